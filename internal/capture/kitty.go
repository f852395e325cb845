package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Kitty captures window content through kitty's remote control protocol.
type Kitty struct{}

func init() { Register(priorityKitty, &Kitty{}) }

// Name returns "kitty".
func (k *Kitty) Name() string { return "kitty" }

// Available reports whether a kitty control socket is advertised.
func (k *Kitty) Available() bool { return os.Getenv("KITTY_LISTEN_ON") != "" }

// osWindow mirrors one element of the array returned by `kitty @ ls`.
type osWindow struct {
	Tabs []struct {
		Windows []kittyWindow `json:"windows"`
	} `json:"tabs"`
}

type kittyWindow struct {
	ID                  int `json:"id"`
	ForegroundProcesses []struct {
		Cmdline []string `json:"cmdline"`
	} `json:"foreground_processes"`
}

// Candidates lists every kitty window running an ssh session.
func (k *Kitty) Candidates(ctx context.Context, _ Options) ([]Candidate, error) {
	wins, err := k.listWindows(ctx)
	if err != nil {
		return nil, err
	}

	var cands []Candidate
	for _, ow := range wins {
		for _, tab := range ow.Tabs {
			for _, w := range tab.Windows {
				for _, p := range w.ForegroundProcesses {
					if len(p.Cmdline) == 0 || p.Cmdline[0] != "ssh" {
						continue
					}
					cands = append(cands, Candidate{
						Source:  "kitty",
						Target:  fmt.Sprintf("id:%d", w.ID),
						Command: strings.Join(p.Cmdline, " "),
					})
				}
			}
		}
	}
	return cands, nil
}

// Locate finds the window whose foreground process is an ssh session to
// the game host.
func (k *Kitty) Locate(ctx context.Context, opts Options) (string, error) {
	wins, err := k.listWindows(ctx)
	if err != nil {
		return "", err
	}
	id, ok := findWindow(wins, opts.SSHHost)
	if !ok {
		return "", ErrNotFound
	}
	return fmt.Sprintf("id:%d", id), nil
}

// findWindow walks the os-window/tab/window tree for the first window
// whose foreground process command line is `ssh <host>`.
func findWindow(wins []osWindow, host string) (int, bool) {
	for _, ow := range wins {
		for _, tab := range ow.Tabs {
			for _, w := range tab.Windows {
				for _, p := range w.ForegroundProcesses {
					if len(p.Cmdline) >= 2 && p.Cmdline[0] == "ssh" && p.Cmdline[1] == host {
						return w.ID, true
					}
				}
			}
		}
	}
	return 0, false
}

func (k *Kitty) listWindows(ctx context.Context) ([]osWindow, error) {
	sock := os.Getenv("KITTY_LISTEN_ON")
	out, err := exec.CommandContext(ctx, "kitty", "@", "--to", sock, "ls").Output()
	if err != nil {
		return nil, fmt.Errorf("capture: kitty ls: %w", err)
	}

	var wins []osWindow
	if err := json.Unmarshal(out, &wins); err != nil {
		return nil, fmt.Errorf("capture: parse kitty ls output: %w", err)
	}
	return wins, nil
}

// Capture grabs the window text with escape sequences preserved.
func (k *Kitty) Capture(ctx context.Context, target string) (string, error) {
	sock := os.Getenv("KITTY_LISTEN_ON")
	out, err := exec.CommandContext(ctx, "kitty", "@", "--to", sock,
		"get-text", "--ansi", "--match", target).Output()
	if err != nil {
		return "", fmt.Errorf("capture: kitty get-text %s: %w", target, err)
	}
	return string(out), nil
}
