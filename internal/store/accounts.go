package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// GetAccount returns the account for the normalized name, or nil when no
// such account exists.
func (s *Store) GetAccount(name string) (*Account, error) {
	var a Account
	err := s.db.QueryRow(
		`SELECT name, secret_hash, level, unlocked_module, xp, sigmas, lives
		 FROM accounts WHERE name = ?`, name,
	).Scan(&a.Name, &a.SecretHash, &a.Level, &a.UnlockedModule, &a.XP, &a.Sigmas, &a.Lives)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account %q: %w", name, err)
	}
	return &a, nil
}

// PutAccount inserts or overwrites one account record.
func (s *Store) PutAccount(a Account) error {
	_, err := s.db.Exec(
		`INSERT INTO accounts (name, secret_hash, level, unlocked_module, xp, sigmas, lives, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))
		 ON CONFLICT(name) DO UPDATE SET
			secret_hash = excluded.secret_hash,
			level = excluded.level,
			unlocked_module = excluded.unlocked_module,
			xp = excluded.xp,
			sigmas = excluded.sigmas,
			lives = excluded.lives,
			updated_at = excluded.updated_at`,
		a.Name, a.SecretHash, a.Level, a.UnlockedModule, a.XP, a.Sigmas, a.Lives,
	)
	if err != nil {
		return fmt.Errorf("put account %q: %w", a.Name, err)
	}
	return nil
}

// PutAccountProfile updates the profile fields of an existing account.
// A missing account is not an error; the session row already carries the
// authoritative snapshot.
func (s *Store) PutAccountProfile(p progression.Profile) error {
	_, err := s.db.Exec(
		`UPDATE accounts SET
			level = ?, unlocked_module = ?, xp = ?, sigmas = ?, lives = ?,
			updated_at = datetime('now')
		 WHERE name = ?`,
		p.Level, p.UnlockedModule, p.XP, p.Sigmas, p.Lives, p.Name,
	)
	if err != nil {
		return fmt.Errorf("update account %q: %w", p.Name, err)
	}
	return nil
}

// LoadAccounts returns the whole account table keyed by normalized name.
func (s *Store) LoadAccounts() (map[string]Account, error) {
	rows, err := s.db.Query(
		`SELECT name, secret_hash, level, unlocked_module, xp, sigmas, lives
		 FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]Account)
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.Name, &a.SecretHash, &a.Level, &a.UnlockedModule, &a.XP, &a.Sigmas, &a.Lives); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts[a.Name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccounts overwrites the whole account table in one transaction.
func (s *Store) SaveAccounts(accounts map[string]Account) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save accounts: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
		return fmt.Errorf("truncate accounts: %w", err)
	}
	for _, a := range accounts {
		_, err := tx.Exec(
			`INSERT INTO accounts (name, secret_hash, level, unlocked_module, xp, sigmas, lives, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
			a.Name, a.SecretHash, a.Level, a.UnlockedModule, a.XP, a.Sigmas, a.Lives,
		)
		if err != nil {
			return fmt.Errorf("insert account %q: %w", a.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save accounts: %w", err)
	}
	return nil
}
