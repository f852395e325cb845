package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexpeek/internal/render"
	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

var flagColor string

var showCmd = &cobra.Command{
	Use:   "show [pane-target]",
	Short: "Show the scoreboard with Wordle-style guess feedback",
	Long: `Capture the scoreboard, decode each player's guesses, and render them
with per-digit feedback against the day's solution: green for a correct
position, yellow for a digit elsewhere in the solution, red for a digit a
previous guess already ruled out.

Examples:
  hexpeek show
  hexpeek show main:1.1
  hexpeek show --color never`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagColor, "color", "", "Colorize output: auto, always, never")
}

func runShow(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	mode := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		mode = flagColor
	}

	text := captureText(cfg, args, logger)
	snap := scoreboard.Extract(text)

	p := render.New(useColor(mode))
	fmt.Print(p.Text(snap))
}

// useColor resolves an auto/always/never mode against the terminal.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
