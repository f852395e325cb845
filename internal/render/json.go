package render

import (
	"encoding/json"

	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

// Document is the structured interchange form of a snapshot. It carries no
// evaluation data; absent day and solution are omitted.
type Document struct {
	Title    string            `json:"title"`
	Day      *int              `json:"day,omitempty"`
	Solution string            `json:"solution,omitempty"`
	Players  map[string]Player `json:"players"`
}

// Player is one player's entry in a Document.
type Player struct {
	Moves   int      `json:"moves"`
	Guesses []string `json:"guesses"`
}

// NewDocument converts a snapshot into its interchange form, with colors
// in canonical "#RRGGBB" text.
func NewDocument(snap scoreboard.Snapshot) Document {
	doc := Document{
		Title:   scoreboard.Title,
		Day:     snap.Day,
		Players: make(map[string]Player, len(snap.Players)),
	}
	if snap.Solution != nil {
		doc.Solution = snap.Solution.Hex()
	}

	for name, rec := range snap.Players {
		guesses := make([]string, 0, len(rec.Guesses))
		for _, g := range rec.Guesses {
			guesses = append(guesses, g.Hex())
		}
		doc.Players[name] = Player{Moves: rec.Moves, Guesses: guesses}
	}
	return doc
}

// JSON serializes the snapshot's interchange form with two-space
// indentation.
func JSON(snap scoreboard.Snapshot) ([]byte, error) {
	return json.MarshalIndent(NewDocument(snap), "", "  ")
}
