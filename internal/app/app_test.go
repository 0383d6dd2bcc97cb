package app

import (
	"strings"
	"testing"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
)

func TestStartsOnLoginWithoutSession(t *testing.T) {
	m := newAppModel(Options{Gateway: store.NewMemory()})
	if got := m.router.Active().Title(); got != "Acessar" {
		t.Errorf("initial screen = %q, want login", got)
	}
}

func TestResumesSavedSession(t *testing.T) {
	gw := store.NewMemory()
	if err := gw.SaveSession(progression.NewProfile("ana")); err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Gateway: gw})
	if got := m.router.Active().Title(); got != "Trilha" {
		t.Errorf("initial screen = %q, want trail", got)
	}
}

// An unreadable session store falls back to login, but the failure must
// be visible on the screen instead of looking like a plain logout.
func TestUnreadableSessionSurfacesWarning(t *testing.T) {
	gw := store.NewMemory()
	gw.FailReads = true
	m := newAppModel(Options{Gateway: gw})

	active := m.router.Active()
	if got := active.Title(); got != "Acessar" {
		t.Fatalf("initial screen = %q, want login", got)
	}
	if view := active.View(120, 40); !strings.Contains(view, "⚠") {
		t.Error("login view carries no warning about the unreadable session")
	}
}
