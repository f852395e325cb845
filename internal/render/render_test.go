package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/hexpeek/internal/ansi"
	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

func intPtr(v int) *int { return &v }

func colorPtr(hex string, t *testing.T) *ansi.Color {
	t.Helper()
	c, err := ansi.ParseColor(hex)
	if err != nil {
		t.Fatalf("ParseColor(%q): %v", hex, err)
	}
	return &c
}

func sampleSnapshot(t *testing.T) scoreboard.Snapshot {
	t.Helper()
	return scoreboard.Snapshot{
		Day:      intPtr(42),
		Solution: colorPtr("#AABBDC", t),
		Players: map[string]scoreboard.PlayerRecord{
			"alice": {
				Moves: 7,
				Guesses: []ansi.Color{
					{R: 0xAA, G: 0xBB, B: 0xCC},
				},
			},
		},
	}
}

func TestTextPlain(t *testing.T) {
	got := New(false).Text(sampleSnapshot(t))
	want := "=== dailyhex! ===\n" +
		"Day: 42\n" +
		"Solution: #AABBDC\n" +
		"\n" +
		"alice (7 moves):\n" +
		"  1. #AABBCC\n" +
		"\n"
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextColorized(t *testing.T) {
	got := New(true).Text(sampleSnapshot(t))

	// The guess block is painted with the guess's own background color.
	block := ansi.Encode(ansi.Color{R: 0xAA, G: 0xBB, B: 0xCC}, ansi.Background)
	if !strings.Contains(got, block) {
		t.Errorf("output missing guess block %q:\n%q", block, got)
	}
	// #AABBCC vs #AABBDC has correct digits, rendered green.
	if !strings.Contains(got, "\x1b[32m") {
		t.Errorf("output missing green digit styling:\n%q", got)
	}
	// Stripping the styling leaves the plain guess text.
	if !strings.Contains(ansi.StripEscapes(got), "1. ") {
		t.Errorf("stripped output lost guess line:\n%q", ansi.StripEscapes(got))
	}
}

func TestTextNoSolutionShowsPlainHex(t *testing.T) {
	snap := sampleSnapshot(t)
	snap.Solution = nil
	got := New(true).Text(snap)

	if strings.Contains(got, "Solution:") {
		t.Errorf("solution line rendered without a solution:\n%q", got)
	}
	if !strings.Contains(ansi.StripEscapes(got), "#AABBCC") {
		t.Errorf("guess hex missing:\n%q", got)
	}
}

func TestTextPlayersSortedByName(t *testing.T) {
	snap := scoreboard.Snapshot{
		Players: map[string]scoreboard.PlayerRecord{
			"zoe":   {Moves: 1},
			"alice": {Moves: 2},
			"bob":   {Moves: 3},
		},
	}
	got := New(false).Text(snap)

	alice := strings.Index(got, "alice")
	bob := strings.Index(got, "bob")
	zoe := strings.Index(got, "zoe")
	if alice < 0 || bob < 0 || zoe < 0 || !(alice < bob && bob < zoe) {
		t.Errorf("players out of order:\n%q", got)
	}
}

func TestJSONDocument(t *testing.T) {
	data, err := JSON(sampleSnapshot(t))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc struct {
		Title    string `json:"title"`
		Day      *int   `json:"day"`
		Solution string `json:"solution"`
		Players  map[string]struct {
			Moves   int      `json:"moves"`
			Guesses []string `json:"guesses"`
		} `json:"players"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if doc.Title != "dailyhex!" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Day == nil || *doc.Day != 42 {
		t.Errorf("day = %v, want 42", doc.Day)
	}
	if doc.Solution != "#AABBDC" {
		t.Errorf("solution = %q", doc.Solution)
	}
	alice := doc.Players["alice"]
	if alice.Moves != 7 || len(alice.Guesses) != 1 || alice.Guesses[0] != "#AABBCC" {
		t.Errorf("alice = %+v", alice)
	}

	// No evaluation fields appear in the structured form.
	if strings.Contains(string(data), "correct") || strings.Contains(string(data), "eliminated") {
		t.Errorf("evaluation data leaked into JSON:\n%s", data)
	}
}

func TestJSONOmitsAbsentFields(t *testing.T) {
	data, err := JSON(scoreboard.Snapshot{Players: map[string]scoreboard.PlayerRecord{}})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	s := string(data)
	if strings.Contains(s, `"day"`) || strings.Contains(s, `"solution"`) {
		t.Errorf("absent fields serialized:\n%s", s)
	}
	if !strings.Contains(s, `"players": {}`) {
		t.Errorf("players object missing:\n%s", s)
	}
}
