package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

const (
	// basePerturbation is the initial half-width of the distractor
	// offset range: candidates are answer ± rand(1..basePerturbation).
	basePerturbation = 10

	// widenAfter is the number of consecutive collisions tolerated
	// before the perturbation range doubles. Widening guarantees the
	// candidate space outgrows the option set, so the loop terminates.
	widenAfter = 24

	// maxAttempts is an absolute guard. On exhaustion the remaining
	// options are filled deterministically (answer+1, answer+2, ...).
	maxAttempts = 1000
)

// Generate produces a problem for the given difficulty level.
//
// The arithmetic scheme is selected by level band: levels 1..100 produce
// basic addition with operands influenced by level%10, levels 101..200 a
// proportional word problem with operand 10+level%20, and all higher
// levels a fixed fallback problem. Content is randomized per call; shape
// is deterministic. Generate never fails and never blocks.
func Generate(level int) Problem {
	p := Problem{ID: uuid.NewString()}

	switch {
	case level <= 100:
		p.ModuleName = "Aritmética"
		a := rand.IntN(12) + level%10
		b := rand.IntN(8) + 2
		p.Question = fmt.Sprintf("%d + %d = ?", a, b)
		p.Answer = strconv.Itoa(a + b)
		p.Options = buildOptions(a + b)
		p.Hint = "Tente decompor os números."

	case level <= 200:
		p.ModuleName = "Proporcionalidade"
		val := 10 + level%20
		p.Question = fmt.Sprintf("Se 1 unidade custa %d, quanto custam 3?", val)
		p.Answer = strconv.Itoa(val * 3)
		p.Options = buildOptions(val * 3)
		p.Hint = "Multiplicação simples."

	default:
		p.ModuleName = "Geral"
		p.Question = "Quanto é 5 x 5?"
		p.Answer = "25"
		p.Options = []string{"20", "25", "30", "15"}
		p.Hint = "Soma repetida."
	}

	return p
}

// buildOptions returns OptionCount distinct option strings containing the
// answer exactly once, in shuffled order.
//
// Distractors are numeric perturbations of the answer. Collisions retry
// within a bounded budget; the perturbation range widens as the budget is
// spent so termination does not depend on luck.
func buildOptions(answer int) []string {
	seen := map[int]bool{answer: true}
	values := []int{answer}
	span := basePerturbation

	for attempts := 0; len(values) < OptionCount; attempts++ {
		if attempts >= maxAttempts {
			// Pathological guard only; unreachable with the widening
			// schedule, but keeps the contract loop-free of faith.
			for next := answer + 1; len(values) < OptionCount; next++ {
				if !seen[next] {
					seen[next] = true
					values = append(values, next)
				}
			}
			break
		}
		if attempts > 0 && attempts%widenAfter == 0 {
			span *= 2
		}

		offset := rand.IntN(span) + 1
		candidate := answer + offset
		if rand.IntN(2) == 0 {
			candidate = answer - offset
		}
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		values = append(values, candidate)
	}

	rand.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	opts := make([]string, len(values))
	for i, v := range values {
		opts[i] = strconv.Itoa(v)
	}
	return opts
}
