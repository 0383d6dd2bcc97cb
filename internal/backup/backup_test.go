package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
)

func seedAccount(t *testing.T, gw store.Gateway, name string, level, xp int) {
	t.Helper()
	p := progression.NewProfile(name)
	p.Level = level
	p.XP = xp
	require.NoError(t, gw.PutAccount(store.Account{Profile: p, SecretHash: "$2a$10$hash-" + name}))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := store.NewMemory()
	seedAccount(t, src, "ana", 42, 820)
	seedAccount(t, src, "bruno", 7, 120)

	path := filepath.Join(t.TempDir(), "backup.json")
	n, err := Export(src, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := store.NewMemory()
	n, err = Import(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := dst.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 42, got["ana"].Level)
	assert.Equal(t, 820, got["ana"].XP)
	assert.Equal(t, "$2a$10$hash-ana", got["ana"].SecretHash)
	assert.Equal(t, 7, got["bruno"].Level)
}

// Passing the last module's exam unlocks module 7, one past the trail.
// A finished-trail account must survive its own export/import format.
func TestRoundTripFinishedTrail(t *testing.T) {
	src := store.NewMemory()
	p := progression.NewProfile("ana")
	p.Level = 600
	p.UnlockedModule = 7
	require.NoError(t, src.PutAccount(store.Account{Profile: p, SecretHash: "$2a$10$hash-ana"}))

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err := Export(src, path)
	require.NoError(t, err)

	dst := store.NewMemory()
	_, err = Import(dst, path)
	require.NoError(t, err)

	got, err := dst.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, 7, got["ana"].UnlockedModule)
}

func TestImportReplacesWholeTable(t *testing.T) {
	src := store.NewMemory()
	seedAccount(t, src, "ana", 1, 0)
	path := filepath.Join(t.TempDir(), "backup.json")
	_, err := Export(src, path)
	require.NoError(t, err)

	dst := store.NewMemory()
	seedAccount(t, dst, "carla", 99, 500)
	_, err = Import(dst, path)
	require.NoError(t, err)

	got, err := dst.LoadAccounts()
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "ana")
	assert.NotContains(t, got, "carla")
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{"version":`},
		{"wrong version", `{"version": 2, "exportedAt": "2026-01-01T00:00:00Z", "accounts": []}`},
		{"missing accounts", `{"version": 1, "exportedAt": "2026-01-01T00:00:00Z"}`},
		{"empty name", `{"version": 1, "exportedAt": "2026-01-01T00:00:00Z", "accounts": [{"name": "", "secretHash": "h", "level": 1, "unlockedModuleId": 1, "xp": 0, "sigmas": 0, "lives": 5}]}`},
		{"lives above cap", `{"version": 1, "exportedAt": "2026-01-01T00:00:00Z", "accounts": [{"name": "ana", "secretHash": "h", "level": 1, "unlockedModuleId": 1, "xp": 0, "sigmas": 0, "lives": 9}]}`},
		{"module out of range", `{"version": 1, "exportedAt": "2026-01-01T00:00:00Z", "accounts": [{"name": "ana", "secretHash": "h", "level": 1, "unlockedModuleId": 8, "xp": 0, "sigmas": 0, "lives": 5}]}`},
		{"missing field", `{"version": 1, "exportedAt": "2026-01-01T00:00:00Z", "accounts": [{"name": "ana", "level": 1, "unlockedModuleId": 1, "xp": 0, "sigmas": 0, "lives": 5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeAcceptsValidDocument(t *testing.T) {
	doc, err := Decode([]byte(`{
		"version": 1,
		"exportedAt": "2026-01-01T00:00:00Z",
		"accounts": [
			{"name": "ana", "secretHash": "h", "level": 12, "unlockedModuleId": 2, "xp": 240, "sigmas": 100, "lives": 3}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Accounts, 1)
	assert.Equal(t, "ana", doc.Accounts[0].Name)
	assert.Equal(t, 2, doc.Accounts[0].UnlockedModuleID)
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(store.NewMemory(), filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
