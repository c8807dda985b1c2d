package config

import "github.com/rustpress/adminterm/internal/vfs"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	Terminal TerminalConfig `json:"terminal"`
	Server   ServerConfig   `json:"server"`
}

// TerminalConfig controls the virtual shell's identity and session policy.
type TerminalConfig struct {
	// Identity shown in the prompt and in whoami/hostname/ls output
	User     string `json:"user"`     // Default: "admin"
	Hostname string `json:"hostname"` // Default: "rustpress-prod"
	Group    string `json:"group"`    // Default: "admin"

	// Session policy
	ProjectRoot  string `json:"project_root"`  // Default: /var/www/rustpress
	Locked       bool   `json:"locked"`        // Default: true (unauthenticated until rustpress auth login)
	HistoryLimit int    `json:"history_limit"` // Default: 500

	// Optional YAML fixture overriding the seeded tree
	FixturePath string `json:"fixture_path"` // Default: "" (use seeded tree)
}

// ServerConfig controls the websocket/REST surface.
type ServerConfig struct {
	Addr string `json:"addr"` // Default: "127.0.0.1:8732"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Terminal: TerminalConfig{
			User:         "admin",
			Hostname:     "rustpress-prod",
			Group:        "admin",
			ProjectRoot:  vfs.DefaultProjectRoot,
			Locked:       true,
			HistoryLimit: 500,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8732",
		},
	}
}
