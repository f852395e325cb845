// Package evaluate scores guesses against the solution with Wordle-style
// per-digit feedback. A digit here is one hex character of a 6-character
// color code, not a decimal digit.
package evaluate

import "strings"

// Class is the feedback assigned to one digit of a guess.
type Class int

const (
	// Unclassified means the digit earned no feedback on this guess.
	Unclassified Class = iota
	// Correct means the right digit in the right position.
	Correct
	// Present means the digit occurs in the solution at another position.
	Present
	// Eliminated means a prior guess already proved the digit absent.
	Eliminated
)

// codeLen is the number of hex digits in a color code.
const codeLen = 6

// DigitSet is a set of hex digits.
type DigitSet map[byte]struct{}

// Has reports whether d is in the set.
func (s DigitSet) Has(d byte) bool {
	_, ok := s[d]
	return ok
}

// Add inserts d into the set.
func (s DigitSet) Add(d byte) {
	s[d] = struct{}{}
}

// normalize strips a leading '#' and upper-cases the digits.
func normalize(code string) string {
	return strings.ToUpper(strings.TrimPrefix(code, "#"))
}

// Evaluate classifies each digit of guess against solution.
//
// Three passes: digits in eliminated are marked Eliminated and excluded
// from matching; exact positional matches are marked Correct and consume
// their solution digit; remaining digits matching any unconsumed solution
// digit (leftmost occurrence first, in guess-position order) are marked
// Present. A solution digit satisfies at most one guess position.
//
// If guess or solution does not have exactly 6 digits, every position is
// returned Unclassified rather than failing.
func Evaluate(guess, solution string, eliminated DigitSet) []Class {
	g := normalize(guess)
	s := normalize(solution)

	classes := make([]Class, len(g))
	if len(g) != codeLen || len(s) != codeLen {
		return classes
	}

	var guessDone, solUsed [codeLen]bool

	for i := 0; i < codeLen; i++ {
		if eliminated.Has(g[i]) {
			classes[i] = Eliminated
			guessDone[i] = true
		}
	}

	for i := 0; i < codeLen; i++ {
		if !guessDone[i] && g[i] == s[i] {
			classes[i] = Correct
			guessDone[i] = true
			solUsed[i] = true
		}
	}

	for i := 0; i < codeLen; i++ {
		if guessDone[i] {
			continue
		}
		for j := 0; j < codeLen; j++ {
			if !solUsed[j] && s[j] == g[i] {
				classes[i] = Present
				solUsed[j] = true
				break
			}
		}
	}

	return classes
}

// EliminatedDigits replays each past guess through the Correct and Present
// consumption rules and collects every digit left without credit. Such a
// digit is proven absent from the solution, so it can be flagged on the
// next guess.
//
// The set is recomputed fresh from the full history on every call; it is a
// property of the solution, not accumulated state.
func EliminatedDigits(history []string, solution string) DigitSet {
	out := make(DigitSet)

	s := normalize(solution)
	if len(s) != codeLen {
		return out
	}

	for _, guess := range history {
		g := normalize(guess)
		if len(g) != codeLen {
			continue
		}

		var guessDone, solUsed [codeLen]bool

		for i := 0; i < codeLen; i++ {
			if g[i] == s[i] {
				guessDone[i] = true
				solUsed[i] = true
			}
		}

		for i := 0; i < codeLen; i++ {
			if guessDone[i] {
				continue
			}
			for j := 0; j < codeLen; j++ {
				if !solUsed[j] && s[j] == g[i] {
					guessDone[i] = true
					solUsed[j] = true
					break
				}
			}
		}

		for i := 0; i < codeLen; i++ {
			if !guessDone[i] {
				out.Add(g[i])
			}
		}
	}

	return out
}
