// Package config provides YAML-based configuration for capture targets
// and output preferences.
package config

// Config holds all operator settings.
type Config struct {
	Capture CaptureConfig `yaml:"capture"`
	Output  OutputConfig  `yaml:"output"`
}

// CaptureConfig selects where the scoreboard is captured from.
type CaptureConfig struct {
	// Target is a default tmux pane target (e.g. "main:1.1") used when
	// auto-detection finds nothing and no target argument was given.
	Target string `yaml:"target"`

	// SSHHost is the ssh destination the game session runs on. The kitty
	// detector matches windows whose foreground process is `ssh <host>`.
	SSHHost string `yaml:"ssh_host"`

	// TimeoutSeconds bounds each multiplexer subprocess call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Capture: CaptureConfig{
			SSHHost:        "hex",
			TimeoutSeconds: 5,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
