package store

import (
	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// Account is a learner profile plus the opaque credential secret, keyed
// by lower-cased name. At most one account exists per normalized name.
type Account struct {
	progression.Profile

	// SecretHash is the bcrypt hash of the learner's access key. The
	// core never inspects it; only the auth collaborator does.
	SecretHash string `json:"secretHash"`
}

// Gateway is the durable key-value persistence boundary. The active
// session holds one profile snapshot; the account table holds one record
// per learner. All writes are full overwrites, so repeating one is
// harmless.
type Gateway interface {
	// LoadSession returns the saved session profile, or (nil, nil) when
	// no session is stored.
	LoadSession() (*progression.Profile, error)

	// SaveSession overwrites the session snapshot.
	SaveSession(progression.Profile) error

	// ClearSession removes the stored session. Clearing an absent
	// session is not an error.
	ClearSession() error

	// LoadAccounts returns the whole account table keyed by normalized
	// name. Absent table yields an empty map.
	LoadAccounts() (map[string]Account, error)

	// SaveAccounts overwrites the whole account table.
	SaveAccounts(map[string]Account) error

	// GetAccount returns one account, or (nil, nil) when absent.
	GetAccount(name string) (*Account, error)

	// PutAccount inserts or overwrites one account record.
	PutAccount(Account) error

	// PutAccountProfile updates the profile fields of an existing
	// account, leaving the credential untouched. Unknown names are
	// ignored: the session write is the authoritative copy.
	PutAccountProfile(progression.Profile) error
}

// Gateway implementations must satisfy the progression write-through
// contract as well.
var (
	_ progression.Saver = Gateway(nil)
)
