package main

import (
	"github.com/spf13/cobra"

	"github.com/hsz-gamedev/pgn.net/internal/output"
)

func newParseCmd() *cobra.Command {
	var (
		workers  int
		width    int
		maxGames int
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse PGN games and re-render them to stdout",
		Long: `Parse splits its input into games, parses each game's movetext and
writes the games back out, re-rendered from the parsed form. Tag lines
are carried through verbatim. Games whose movetext does not parse are
logged and skipped. With no files, input is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("workers") {
				cfg.Parse.Workers = workers
			}
			if flags.Changed("max-games") {
				cfg.Parse.MaxGames = maxGames
			}
			if flags.Changed("width") {
				cfg.Output.Width = width
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

			w := output.NewPGNWriter(cmd.OutOrStdout(), cfg)
			bad := 0
			for _, res := range results {
				if res.Err != nil {
					bad++
					if !cfg.Output.Quiet {
						log.Errorf("game %d: %s", res.Index+1, res.Err)
					}
					continue
				}
				if err := w.WriteGame(res.Game); err != nil {
					return err
				}
			}

			if bad > 0 && !cfg.Output.Quiet {
				log.Noticef("%d of %d games failed to parse", bad, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parser goroutines (0 = all CPUs)")
	cmd.Flags().IntVar(&maxGames, "max-games", 0, "stop after this many games (0 = no limit)")
	cmd.Flags().IntVar(&width, "width", 80, "output line width (0 = no wrapping)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-game logging")

	return cmd
}
