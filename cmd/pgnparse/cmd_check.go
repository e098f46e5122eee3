package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		workers int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse games and report errors without writing output",
		Long: `Check parses every game's movetext and reports one line per game.
The exit status is non-zero when any game fails to parse. With no
files, input is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("workers") {
				cfg.Parse.Workers = workers
			}
			if flags.Changed("quiet") {
				cfg.Output.Quiet = quiet
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			results, err := parseInputs(cmd, cfg, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bad := 0
			for _, res := range results {
				if res.Err != nil {
					bad++
					fmt.Fprintf(out, "game %d: %v\n", res.Index+1, res.Err)
					continue
				}
				if !cfg.Output.Quiet {
					fmt.Fprintf(out, "game %d: ok, %d plies\n", res.Index+1, res.Game.PlyCount())
				}
			}

			if bad > 0 {
				return fmt.Errorf("%d of %d games failed", bad, len(results))
			}
			if !cfg.Output.Quiet {
				fmt.Fprintf(out, "%d games ok\n", len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parser goroutines (0 = all CPUs)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "report failures only")

	return cmd
}
