package problemgen

import (
	"strconv"
	"strings"
	"testing"
)

// assertOptionInvariant checks the option-set contract for one problem.
func assertOptionInvariant(t *testing.T, level int, p Problem) {
	t.Helper()

	if len(p.Options) != OptionCount {
		t.Fatalf("level %d: %d options, want %d", level, len(p.Options), OptionCount)
	}

	seen := make(map[string]bool, OptionCount)
	answerHits := 0
	for _, opt := range p.Options {
		if seen[opt] {
			t.Fatalf("level %d: duplicate option %q in %v", level, opt, p.Options)
		}
		seen[opt] = true
		if opt == p.Answer {
			answerHits++
		}
	}
	if answerHits != 1 {
		t.Fatalf("level %d: answer %q appears %d times in %v", level, p.Answer, answerHits, p.Options)
	}
}

func TestGenerateOptionInvariantAllLevels(t *testing.T) {
	for level := 1; level <= 600; level++ {
		p := Generate(level)
		assertOptionInvariant(t, level, p)
		if p.ID == "" {
			t.Fatalf("level %d: empty problem id", level)
		}
		if p.Question == "" || p.Hint == "" || p.ModuleName == "" {
			t.Fatalf("level %d: incomplete problem %+v", level, p)
		}
	}
}

func TestGenerateInvariantManyTrials(t *testing.T) {
	// Randomized content, property-checked over many trials.
	for i := 0; i < 500; i++ {
		for _, level := range []int{1, 7, 100, 101, 150, 200, 201, 599} {
			assertOptionInvariant(t, level, Generate(level))
		}
	}
}

func TestGenerateBandSchemes(t *testing.T) {
	p := Generate(5)
	if p.ModuleName != "Aritmética" {
		t.Errorf("level 5 module = %q, want Aritmética", p.ModuleName)
	}
	if !strings.Contains(p.Question, "+") {
		t.Errorf("level 5 question = %q, want addition", p.Question)
	}

	// Band 2 is fully determined by the level: answer = 3 * (10 + level%20).
	p = Generate(150)
	if p.ModuleName != "Proporcionalidade" {
		t.Errorf("level 150 module = %q, want Proporcionalidade", p.ModuleName)
	}
	want := strconv.Itoa(3 * (10 + 150%20))
	if p.Answer != want {
		t.Errorf("level 150 answer = %q, want %q", p.Answer, want)
	}

	p = Generate(450)
	if p.ModuleName != "Geral" || p.Answer != "25" {
		t.Errorf("level 450 = %q/%q, want Geral/25", p.ModuleName, p.Answer)
	}
}

func TestGenerateFreshIDs(t *testing.T) {
	a, b := Generate(1), Generate(1)
	if a.ID == b.ID {
		t.Errorf("consecutive problems share id %q", a.ID)
	}
}

func TestBuildOptionsTerminates(t *testing.T) {
	// Small answers push distractors negative and raise collision odds;
	// the widening schedule must still terminate within the bound.
	for i := 0; i < 2000; i++ {
		for _, answer := range []int{0, 1, 2, 25, -3} {
			opts := buildOptions(answer)
			if len(opts) != OptionCount {
				t.Fatalf("buildOptions(%d) = %v, want %d options", answer, opts, OptionCount)
			}
		}
	}
}

func TestCheckAnswerExactEquality(t *testing.T) {
	p := Problem{Answer: "25", Options: []string{"25", "24", "26", "30"}}

	if !CheckAnswer("25", p) {
		t.Error("exact match must be correct")
	}
	// Numeric equivalence with different formatting is incorrect by
	// contract, not by accident.
	for _, wrong := range []string{"025", " 25", "25 ", "25.0", "24"} {
		if CheckAnswer(wrong, p) {
			t.Errorf("CheckAnswer(%q) = true, want false", wrong)
		}
	}
}
