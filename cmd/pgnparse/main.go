// pgnparse is a tool for parsing, checking and re-rendering chess game
// movetext in PGN format.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/hsz-gamedev/pgn.net/internal/config"
)

const programVersion = "0.1.0"

var log = commonlog.GetLogger("pgnparse")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pgnparse",
		Short:        "Parse, check and re-render PGN movetext",
		Version:      programVersion,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Int("verbosity", 0, "log verbosity, higher is noisier")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newMoveCmd())

	return cmd
}

// loadConfig loads the runtime configuration, applies the persistent
// flag overrides and configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbosity") {
		cfg.Log.Verbosity, _ = flags.GetInt("verbosity")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)

	return cfg, nil
}
