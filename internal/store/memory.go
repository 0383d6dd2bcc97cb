package store

import (
	"errors"
	"sync"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// ErrUnavailable simulates a persistence outage in tests.
var ErrUnavailable = errors.New("store: persistence unavailable")

// Memory is an in-memory Gateway for tests and ephemeral runs.
type Memory struct {
	mu       sync.Mutex
	session  *progression.Profile
	accounts map[string]Account

	// FailWrites makes every mutating call return ErrUnavailable.
	FailWrites bool

	// FailReads makes every read call return ErrUnavailable.
	FailReads bool
}

var _ Gateway = (*Memory)(nil)

// NewMemory returns an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{accounts: make(map[string]Account)}
}

func (m *Memory) LoadSession() (*progression.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, ErrUnavailable
	}
	if m.session == nil {
		return nil, nil
	}
	p := *m.session
	return &p, nil
}

func (m *Memory) SaveSession(p progression.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	m.session = &p
	return nil
}

func (m *Memory) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	m.session = nil
	return nil
}

func (m *Memory) GetAccount(name string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, ErrUnavailable
	}
	a, ok := m.accounts[name]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *Memory) PutAccount(a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	m.accounts[a.Name] = a
	return nil
}

func (m *Memory) PutAccountProfile(p progression.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	a, ok := m.accounts[p.Name]
	if !ok {
		return nil
	}
	a.Profile = p
	m.accounts[p.Name] = a
	return nil
}

func (m *Memory) LoadAccounts() (map[string]Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, ErrUnavailable
	}
	out := make(map[string]Account, len(m.accounts))
	for k, v := range m.accounts {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) SaveAccounts(accounts map[string]Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	m.accounts = make(map[string]Account, len(accounts))
	for k, v := range accounts {
		m.accounts[k] = v
	}
	return nil
}
