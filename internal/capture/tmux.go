package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

// Tmux captures pane content through the tmux CLI.
type Tmux struct{}

func init() { Register(priorityTmux, &Tmux{}) }

// Name returns "tmux".
func (t *Tmux) Name() string { return "tmux" }

// Available reports whether we are running inside a tmux client.
func (t *Tmux) Available() bool { return os.Getenv("TMUX") != "" }

// Candidates lists every pane together with its current command.
func (t *Tmux) Candidates(ctx context.Context, _ Options) ([]Candidate, error) {
	out, err := exec.CommandContext(ctx, "tmux", "list-panes", "-a", "-F",
		"#{session_name}:#{window_index}.#{pane_index} #{pane_current_command}").Output()
	if err != nil {
		return nil, fmt.Errorf("capture: tmux list-panes: %w", err)
	}
	return parsePaneList(string(out)), nil
}

// parsePaneList splits list-panes output into candidates. Each line is
// "session:window.pane command".
func parsePaneList(out string) []Candidate {
	var cands []Candidate
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		target, command, ok := strings.Cut(line, " ")
		if !ok || target == "" {
			continue
		}
		cands = append(cands, Candidate{Source: "tmux", Target: target, Command: command})
	}
	return cands
}

// Locate probes every ssh pane and picks the first whose content shows the
// scoreboard title.
func (t *Tmux) Locate(ctx context.Context, opts Options) (string, error) {
	cands, err := t.Candidates(ctx, opts)
	if err != nil {
		return "", err
	}

	for _, c := range cands {
		if c.Command != "ssh" {
			continue
		}
		content, err := t.Capture(ctx, c.Target)
		if err != nil {
			continue
		}
		if strings.Contains(content, scoreboard.Title) {
			return c.Target, nil
		}
	}
	return "", ErrNotFound
}

// Capture grabs the pane content with escape sequences preserved (-e) and
// printed to stdout (-p).
func (t *Tmux) Capture(ctx context.Context, target string) (string, error) {
	out, err := exec.CommandContext(ctx, "tmux", "capture-pane", "-t", target, "-e", "-p").Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("capture: tmux capture-pane %s: %w (output: %s)", target, err, exitErr.Stderr)
		}
		return "", fmt.Errorf("capture: tmux capture-pane %s: %w", target, err)
	}
	return string(out), nil
}
