// Package render presents an extracted scoreboard as colorized text with
// Wordle-style guess feedback, or as a JSON document without evaluations.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/hexpeek/internal/ansi"
	"github.com/vovakirdan/hexpeek/internal/evaluate"
	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

// Presenter renders snapshots as human-readable text. The lipgloss color
// profile is fixed at construction, so output for a given snapshot is
// deterministic regardless of the surrounding terminal.
type Presenter struct {
	color  bool
	styles map[evaluate.Class]lipgloss.Style
}

// New returns a Presenter. With color enabled, guess blocks are painted
// with their background color and digit feedback is styled green, yellow,
// or red; otherwise output is plain text.
func New(color bool) *Presenter {
	profile := termenv.Ascii
	if color {
		profile = termenv.TrueColor
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	return &Presenter{
		color: color,
		styles: map[evaluate.Class]lipgloss.Style{
			evaluate.Correct:      r.NewStyle().Foreground(lipgloss.Color("2")),
			evaluate.Present:      r.NewStyle().Foreground(lipgloss.Color("3")),
			evaluate.Eliminated:   r.NewStyle().Foreground(lipgloss.Color("1")),
			evaluate.Unclassified: r.NewStyle(),
		},
	}
}

// Text renders the snapshot: a title line, optional day and solution
// lines, then each player's guesses with per-digit feedback. Players are
// printed in name order.
func (p *Presenter) Text(snap scoreboard.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s ===\n", scoreboard.Title)
	if snap.Day != nil {
		fmt.Fprintf(&sb, "Day: %d\n", *snap.Day)
	}
	if snap.Solution != nil {
		fmt.Fprintf(&sb, "Solution: %s\n", snap.Solution.Hex())
	}
	sb.WriteString("\n")

	for _, name := range sortedNames(snap.Players) {
		rec := snap.Players[name]
		fmt.Fprintf(&sb, "%s (%d moves):\n", name, rec.Moves)

		for i, guess := range rec.Guesses {
			fmt.Fprintf(&sb, "  %d. %s%s\n", i+1, p.block(guess), p.guess(guess, i, rec.Guesses, snap.Solution))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// block paints a two-character swatch in the guess's own color.
func (p *Presenter) block(c ansi.Color) string {
	if !p.color {
		return ""
	}
	return ansi.Encode(c, ansi.Background) + "  " + ansi.Reset + " "
}

// guess renders guess number i with per-digit feedback against the
// solution. Digits of earlier guesses that earned no credit feed the
// elimination set for this one. Without a known solution the plain hex
// string is shown.
func (p *Presenter) guess(g ansi.Color, i int, all []ansi.Color, solution *ansi.Color) string {
	hex := g.Hex()
	if solution == nil {
		return hex
	}

	history := make([]string, 0, i)
	for _, prior := range all[:i] {
		history = append(history, prior.Hex())
	}
	eliminated := evaluate.EliminatedDigits(history, solution.Hex())
	classes := evaluate.Evaluate(hex, solution.Hex(), eliminated)

	var sb strings.Builder
	sb.WriteByte('#')
	digits := strings.TrimPrefix(hex, "#")
	for j := 0; j < len(digits); j++ {
		cls := evaluate.Unclassified
		if j < len(classes) {
			cls = classes[j]
		}
		sb.WriteString(p.styles[cls].Render(string(digits[j])))
	}
	return sb.String()
}

func sortedNames(players map[string]scoreboard.PlayerRecord) []string {
	names := make([]string, 0, len(players))
	for name := range players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
