package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
)

// LoadSession returns the stored session profile, or nil when absent.
func (s *Store) LoadSession() (*progression.Profile, error) {
	var p progression.Profile
	err := s.db.QueryRow(
		`SELECT name, level, unlocked_module, xp, sigmas, lives
		 FROM session WHERE id = 1`,
	).Scan(&p.Name, &p.Level, &p.UnlockedModule, &p.XP, &p.Sigmas, &p.Lives)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &p, nil
}

// SaveSession overwrites the single session row with the given snapshot.
func (s *Store) SaveSession(p progression.Profile) error {
	_, err := s.db.Exec(
		`INSERT INTO session (id, name, level, unlocked_module, xp, sigmas, lives, saved_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, datetime('now'))
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			level = excluded.level,
			unlocked_module = excluded.unlocked_module,
			xp = excluded.xp,
			sigmas = excluded.sigmas,
			lives = excluded.lives,
			saved_at = excluded.saved_at`,
		p.Name, p.Level, p.UnlockedModule, p.XP, p.Sigmas, p.Lives,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession removes the stored session if present.
func (s *Store) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
