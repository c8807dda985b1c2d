package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rustpress/adminterm/internal/shell"
	"github.com/rustpress/adminterm/internal/ui"
	"github.com/rustpress/adminterm/internal/vfs"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the admin terminal locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("repl requires an interactive terminal")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		tree := vfs.DefaultTree()
		if cfg.Terminal.FixturePath != "" {
			tree, err = vfs.LoadFixtureFile(cfg.Terminal.FixturePath)
			if err != nil {
				return fmt.Errorf("failed to load tree fixture: %w", err)
			}
		}

		var renderer ui.MarkdownRenderer
		if glam, err := ui.NewGlamourRenderer(); err != nil {
			// Help overlay falls back to raw markdown.
			fmt.Fprintf(os.Stderr, "Warning: markdown renderer unavailable: %v\n", err)
		} else {
			renderer = glam
		}

		interp := shell.New(cfg)
		sess := shell.NewSession(cfg, tree)
		return ui.Run(interp, sess, renderer)
	},
}

func init() {
	replCmd.Flags().String("fixture", "", "YAML tree fixture overriding the seeded tree")
	replCmd.Flags().Bool("unlocked", false, "start the session authenticated")
	rootCmd.AddCommand(replCmd)
}
