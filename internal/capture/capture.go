// Package capture acquires the raw scoreboard text, escape sequences
// included, from a terminal multiplexer or emulator. Everything past this
// package treats the result as an opaque string; failures here are fatal
// to the invocation and the core never runs.
package capture

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Options carries operator settings into the capture sources.
type Options struct {
	// Target is an explicit tmux pane target (e.g. "main:1.1"), used as
	// the final fallback when auto-detection finds nothing.
	Target string

	// SSHHost is the ssh destination the game session runs on.
	SSHHost string

	// Logger receives per-source probe results. May be nil.
	Logger *log.Logger
}

// Candidate is a pane or window the auto-detector will probe.
type Candidate struct {
	Source  string
	Target  string
	Command string
}

// Source produces raw captured text from one kind of terminal host.
// Implementations register themselves in init() so callers probe them in
// priority order without hardcoded dependencies.
type Source interface {
	// Name identifies the source (e.g. "kitty", "tmux").
	Name() string

	// Available reports whether the source can run in the current
	// environment.
	Available() bool

	// Candidates lists the panes or windows the detector considers.
	Candidates(ctx context.Context, opts Options) ([]Candidate, error)

	// Locate finds the pane or window showing the scoreboard and returns
	// a target usable with Capture.
	Locate(ctx context.Context, opts Options) (string, error)

	// Capture returns the raw text of the target, escape sequences
	// included.
	Capture(ctx context.Context, target string) (string, error)
}

// ErrNotFound is returned when no source can locate the scoreboard.
var ErrNotFound = errors.New("capture: no pane or window showing the scoreboard")

// Text acquires the raw scoreboard text. Available sources are probed in
// priority order (kitty before tmux, matching the original operator
// setup); an explicit tmux target in opts is the final fallback.
func Text(ctx context.Context, opts Options) (string, error) {
	for _, s := range Sources() {
		if !s.Available() {
			continue
		}
		target, err := s.Locate(ctx, opts)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Debug("source found nothing", "source", s.Name(), "error", err)
			}
			continue
		}
		if opts.Logger != nil {
			opts.Logger.Debug("capturing", "source", s.Name(), "target", target)
		}
		return s.Capture(ctx, target)
	}

	if opts.Target != "" {
		if opts.Logger != nil {
			opts.Logger.Debug("capturing explicit target", "target", opts.Target)
		}
		return (&Tmux{}).Capture(ctx, opts.Target)
	}

	return "", ErrNotFound
}
