package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpeek/internal/capture"
)

var panesCmd = &cobra.Command{
	Use:   "panes",
	Short: "List panes and windows the detector would probe",
	Long: `Shows every tmux pane and kitty window visible to the auto-detector,
with its target and current command. Useful when auto-detection picks the
wrong pane or nothing at all.`,
	Args: cobra.NoArgs,
	Run:  runPanes,
}

func runPanes(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	ctx, cancel := captureContext(cfg)
	defer cancel()

	opts := capture.Options{SSHHost: cfg.Capture.SSHHost, Logger: logger}

	var cands []capture.Candidate
	for _, src := range capture.Sources() {
		if !src.Available() {
			logger.Debug("source unavailable", "source", src.Name())
			continue
		}
		found, err := src.Candidates(ctx, opts)
		if err != nil {
			logger.Warn("listing failed", "source", src.Name(), "error", err)
			continue
		}
		cands = append(cands, found...)
	}

	if len(cands) == 0 {
		fmt.Println("No panes or windows found.")
		fmt.Println()
		fmt.Println("Run hexpeek inside tmux, or start kitty with remote control enabled.")
		return
	}

	fmt.Printf("  %-6s  %-20s  %s\n", "Source", "Target", "Command")
	fmt.Printf("  %-6s  %-20s  %s\n", "------", "------", "-------")
	for _, c := range cands {
		fmt.Printf("  %-6s  %-20s  %s\n", c.Source, c.Target, c.Command)
	}
}
