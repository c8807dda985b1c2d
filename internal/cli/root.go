// Package cli wires the adminterm command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/rustpress/adminterm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "adminterm",
	Short: "RustPress admin terminal",
	Long: `adminterm is the terminal core of the RustPress admin UI: a virtual
file-system shell over a simulated deployment tree, plus the line diff
engine behind the editor's change view.

Run it locally with 'adminterm repl', or serve it to the browser admin
panel with 'adminterm serve'.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotenv)
}

// loadDotenv loads a local .env if present; missing files are fine.
func loadDotenv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}
}

// loadConfig loads the dotfile configuration, applying the shared
// command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if fixture, _ := cmd.Flags().GetString("fixture"); fixture != "" {
		cfg.Terminal.FixturePath = fixture
	}
	if unlocked, _ := cmd.Flags().GetBool("unlocked"); unlocked {
		cfg.Terminal.Locked = false
	}
	return cfg, nil
}
