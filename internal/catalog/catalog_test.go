package catalog

import "testing"

func TestRangesPartitionLevels(t *testing.T) {
	mods := All()
	if len(mods) != 6 {
		t.Fatalf("module count = %d, want 6", len(mods))
	}

	wantLo := 1
	for i, m := range mods {
		if m.ID != i+1 {
			t.Errorf("module %d has id %d, want %d (id order must equal range order)", i, m.ID, i+1)
		}
		if m.Lo != wantLo {
			t.Errorf("module %d starts at %d, want %d (ranges must be contiguous)", m.ID, m.Lo, wantLo)
		}
		if m.Hi-m.Lo+1 != LevelsPerModule {
			t.Errorf("module %d spans %d levels, want %d", m.ID, m.Hi-m.Lo+1, LevelsPerModule)
		}
		if m.Color == nil {
			t.Errorf("module %d has no accent color", m.ID)
		}
		wantLo = m.Hi + 1
	}
	if wantLo != 601 {
		t.Errorf("trail ends at level %d, want 600", wantLo-1)
	}
}

func TestByID(t *testing.T) {
	m, err := ByID(3)
	if err != nil {
		t.Fatalf("ByID(3): %v", err)
	}
	if m.Title != "Álgebra Inicial" {
		t.Errorf("ByID(3).Title = %q", m.Title)
	}

	for _, id := range []int{0, -1, 7, 100} {
		if _, err := ByID(id); err != ErrOutOfRange {
			t.Errorf("ByID(%d) error = %v, want ErrOutOfRange", id, err)
		}
	}
}

func TestForLevel(t *testing.T) {
	tests := []struct {
		level  int
		wantID int
	}{
		{1, 1},
		{100, 1},
		{101, 2},
		{200, 2},
		{201, 3},
		{600, 6},
		{601, 6},  // above the trail clamps to the last module
		{1000, 6},
		{0, 1}, // degenerate input clamps low
	}
	for _, tt := range tests {
		if got := ForLevel(tt.level).ID; got != tt.wantID {
			t.Errorf("ForLevel(%d).ID = %d, want %d", tt.level, got, tt.wantID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Title = "mutated"
	if All()[0].Title == "mutated" {
		t.Error("All() must return a copy of the catalog")
	}
}
