// Package scoreboard reconstructs structured player data from a captured
// dailyhex scoreboard, escape sequences included.
package scoreboard

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexpeek/internal/ansi"
)

// Title is the literal heading the game renders. The heading's foreground
// color doubles as the puzzle solution.
const Title = "dailyhex!"

// PlayerRecord is one player's row: the on-screen move counter and the
// guessed colors in submission order. The counter is displayed separately
// from the guess blocks, so the two lengths need not agree.
type PlayerRecord struct {
	Moves   int
	Guesses []ansi.Color
}

// Snapshot is everything extractable from one capture. Day and Solution
// are nil when the scoreboard did not show them.
type Snapshot struct {
	Day      *int
	Solution *ansi.Color
	Players  map[string]PlayerRecord
}

var (
	dayPattern = regexp.MustCompile(`day (\d+)`)
	// Player rows are: optional leading whitespace, a name of word
	// characters, separator content, a trailing move count.
	playerPattern = regexp.MustCompile(`^\s*(\w+)\s+.*?(\d+)\s*$`)
)

// headerTokens mark title, header, and day lines, which are never player
// rows.
var headerTokens = []string{"name", "moves", "dailyhex", "day"}

// Extract scans the captured text line by line. It is a pure function: the
// same input always yields the same snapshot, and missing day, solution,
// or players are simply absent rather than errors.
func Extract(text string) Snapshot {
	snap := Snapshot{Players: make(map[string]PlayerRecord)}
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		// The day line carries a middle-dot or > separator glyph.
		if snap.Day == nil && strings.Contains(line, "day") &&
			(strings.Contains(line, "·") || strings.Contains(line, ">")) {
			if m := dayPattern.FindStringSubmatch(line); m != nil {
				if day, err := strconv.Atoi(m[1]); err == nil {
					snap.Day = &day
				}
			}
		}

		if snap.Solution == nil && strings.Contains(line, Title) {
			if colors := ansi.DecodeColors(line, ansi.Foreground); len(colors) > 0 {
				snap.Solution = &colors[0]
			}
		}
	}

	for _, line := range lines {
		clean := ansi.StripEscapes(line)
		if strings.TrimSpace(clean) == "" || isHeaderLine(clean) {
			continue
		}

		m := playerPattern.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		moves, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		// Guess colors come from the raw line: the rendered blocks set
		// background colors in submission order. A repeated name
		// overwrites the earlier row.
		snap.Players[m[1]] = PlayerRecord{
			Moves:   moves,
			Guesses: ansi.DecodeColors(line, ansi.Background),
		}
	}

	return snap
}

func isHeaderLine(clean string) bool {
	for _, tok := range headerTokens {
		if strings.Contains(clean, tok) {
			return true
		}
	}
	return false
}
