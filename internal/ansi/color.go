// Package ansi decodes and encodes the 24-bit SGR color escape sequences
// found in captured terminal content.
package ansi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a hex color of the form "#RRGGBB". The leading "#" is
// optional; exactly 6 hex digits must remain after removing it.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("ansi: invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("ansi: invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the canonical "#RRGGBB" form with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Plane selects which color channel of a cell an escape sequence sets.
type Plane int

const (
	Background Plane = iota
	Foreground
)

// Background colors use SGR selector 48, foreground 38. tmux emits
// ;-separated parameters while kitty emits :-separated ones, and a
// foreground color may share its sequence with other attributes (bold
// etc.), so the foreground pattern tolerates leading numeric parameters.
var (
	bgPattern  = regexp.MustCompile(`\x1b\[48[;:]2[;:](\d+)[;:](\d+)[;:](\d+)m`)
	fgPattern  = regexp.MustCompile(`\x1b\[(?:\d+;)*38[;:]2[;:](\d+)[;:](\d+)[;:](\d+)m`)
	sgrPattern = regexp.MustCompile(`\x1b\[[0-9;:]*m`)
)

// DecodeColors extracts every RGB color set on the given plane, in the
// order the sequences appear in text. Duplicates are preserved. Plain text,
// malformed sequences, and sequences that set nothing on the plane are
// ignored.
func DecodeColors(text string, plane Plane) []Color {
	pat := bgPattern
	if plane == Foreground {
		pat = fgPattern
	}

	var colors []Color
	for _, m := range pat.FindAllStringSubmatch(text, -1) {
		r, okR := component(m[1])
		g, okG := component(m[2])
		b, okB := component(m[3])
		if !okR || !okG || !okB {
			continue
		}
		colors = append(colors, Color{R: r, G: g, B: b})
	}
	return colors
}

func component(s string) (uint8, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// Encode returns the minimal escape sequence that sets c on the given
// plane. Only that one attribute is affected until the next reset.
func Encode(c Color, plane Plane) string {
	selector := 48
	if plane == Foreground {
		selector = 38
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", selector, c.R, c.G, c.B)
}

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// StripEscapes removes SGR escape sequences from text, leaving visible
// characters and whitespace intact. Used to isolate plain text for
// pattern matching.
func StripEscapes(text string) string {
	return sgrPattern.ReplaceAllString(text, "")
}
