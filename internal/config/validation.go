package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Terminal.User == "" {
		errs = append(errs, "terminal.user must not be empty")
	}
	if c.Terminal.Hostname == "" {
		errs = append(errs, "terminal.hostname must not be empty")
	}
	if c.Terminal.Group == "" {
		errs = append(errs, "terminal.group must not be empty")
	}
	if !strings.HasPrefix(c.Terminal.ProjectRoot, "/") {
		errs = append(errs, "terminal.project_root must be an absolute path")
	}
	if c.Terminal.HistoryLimit < 1 {
		errs = append(errs, "terminal.history_limit must be >= 1")
	}
	if c.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
