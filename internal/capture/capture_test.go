package capture

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSourcesProbeOrder(t *testing.T) {
	srcs := Sources()
	if len(srcs) != 2 {
		t.Fatalf("Sources = %d entries, want 2", len(srcs))
	}
	if srcs[0].Name() != "kitty" || srcs[1].Name() != "tmux" {
		t.Errorf("probe order = [%s %s], want [kitty tmux]", srcs[0].Name(), srcs[1].Name())
	}
}

func TestParsePaneList(t *testing.T) {
	out := "main:1.1 ssh\nmain:1.2 zsh\nwork:0.0 vim\n"
	got := parsePaneList(out)
	want := []Candidate{
		{Source: "tmux", Target: "main:1.1", Command: "ssh"},
		{Source: "tmux", Target: "main:1.2", Command: "zsh"},
		{Source: "tmux", Target: "work:0.0", Command: "vim"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parsePaneList = %v, want %v", got, want)
	}

	if got := parsePaneList(""); got != nil {
		t.Errorf("parsePaneList(\"\") = %v, want none", got)
	}
}

const kittyLS = `[
  {
    "tabs": [
      {
        "windows": [
          {
            "id": 1,
            "foreground_processes": [
              {"cmdline": ["zsh"]}
            ]
          },
          {
            "id": 3,
            "foreground_processes": [
              {"cmdline": ["ssh", "hex"]}
            ]
          }
        ]
      }
    ]
  }
]`

func TestFindWindow(t *testing.T) {
	var wins []osWindow
	if err := json.Unmarshal([]byte(kittyLS), &wins); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	id, ok := findWindow(wins, "hex")
	if !ok || id != 3 {
		t.Errorf("findWindow = %d, %v; want 3, true", id, ok)
	}

	if _, ok := findWindow(wins, "other"); ok {
		t.Error("findWindow matched the wrong host")
	}
}
