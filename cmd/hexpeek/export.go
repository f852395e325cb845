package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpeek/internal/render"
	"github.com/vovakirdan/hexpeek/internal/scoreboard"
)

var exportCmd = &cobra.Command{
	Use:   "export [pane-target]",
	Short: "Export raw scoreboard data as JSON",
	Long: `Capture the scoreboard and print the extracted data (day, solution,
players with moves and guesses) as JSON, without any guess evaluations.

Examples:
  hexpeek export
  hexpeek export main:1.1 > today.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	text := captureText(cfg, args, logger)
	snap := scoreboard.Extract(text)

	data, err := render.JSON(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
