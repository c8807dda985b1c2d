package cli

import (
	"github.com/spf13/cobra"
	"github.com/rustpress/adminterm/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the terminal backend for the browser admin UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		srv, err := server.New(cfg)
		if err != nil {
			return err
		}
		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("fixture", "", "YAML tree fixture overriding the seeded tree")
	serveCmd.Flags().Bool("unlocked", false, "start sessions authenticated")
	rootCmd.AddCommand(serveCmd)
}
