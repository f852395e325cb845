// hexpeek reads the dailyhex scoreboard out of a tmux pane or kitty
// window and re-renders it with Wordle-style guess feedback.
//
// Usage:
//
//	hexpeek show [pane-target]    - Colorized scoreboard with guess feedback
//	hexpeek export [pane-target]  - Raw scoreboard data as JSON
//	hexpeek panes                 - List panes/windows the detector probes
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ~/.hexpeek/config.yaml)
//	--input <path>   - Read a saved capture instead of a live pane ("-" for stdin)
//	--verbose        - Enable debug logging
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpeek/internal/capture"
	"github.com/vovakirdan/hexpeek/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagInput   string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexpeek",
	Short: "Peek at the dailyhex scoreboard running in another pane",
	Long: `hexpeek captures the dailyhex scoreboard from a tmux pane or kitty
window, decodes the color escape sequences into player data, and shows
each guess with Wordle-style feedback against the day's solution.

Detection order: kitty (when its control socket is up), tmux
auto-detection, then an explicit tmux pane target.

Examples:
  hexpeek show
  hexpeek show main:1.1
  hexpeek export > today.json
  hexpeek show --input saved-capture.txt`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", `Read capture from a file instead of a live pane ("-" for stdin)`)
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(panesCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "hexpeek"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// captureText returns the raw scoreboard text from --input or a live pane.
// A capture failure is fatal: the core never runs without input.
func captureText(cfg config.Config, args []string, logger *log.Logger) string {
	if flagInput != "" {
		var data []byte
		var err error
		if flagInput == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(flagInput)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		return string(data)
	}

	target := cfg.Capture.Target
	if len(args) > 0 {
		target = args[0]
	}

	ctx, cancel := captureContext(cfg)
	defer cancel()

	text, err := capture.Text(ctx, capture.Options{
		Target:  target,
		SSHHost: cfg.Capture.SSHHost,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return text
}

func captureContext(cfg config.Config) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.Capture.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
