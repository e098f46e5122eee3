package main

import (
	"github.com/spf13/cobra"

	"github.com/hsz-gamedev/pgn.net/internal/config"
	"github.com/hsz-gamedev/pgn.net/internal/worker"
)

// parseInputs splits the named files, or stdin when none are given,
// into games and parses them through the worker pool. Results come
// back in input order, one per game, with per-game parse failures
// recorded on the result rather than aborting the run.
func parseInputs(cmd *cobra.Command, cfg *config.Config, args []string) ([]worker.Result, error) {
	ctx := cmd.Context()
	pool := worker.NewPool(cfg.Parse.EffectiveWorkers())
	jobs := make(chan worker.Job, pool.NumWorkers())

	var splitErr error
	go func() {
		defer close(jobs)

		if len(args) == 0 {
			_, splitErr = splitGames(ctx, cmd.InOrStdin(), 0, cfg.Parse.MaxGames, jobs)
			return
		}

		sent := 0
		for _, name := range args {
			budget := 0
			if cfg.Parse.MaxGames > 0 {
				budget = cfg.Parse.MaxGames - sent
			}
			n, err := splitFile(ctx, name, sent, budget, jobs)
			sent += n
			if err != nil {
				splitErr = err
				return
			}
			if cfg.Parse.MaxGames > 0 && sent >= cfg.Parse.MaxGames {
				return
			}
		}
	}()

	results, err := pool.Run(ctx, jobs)
	if err != nil {
		return nil, err
	}
	if splitErr != nil {
		return nil, splitErr
	}

	log.Debugf("parsed %d games", len(results))
	return results, nil
}
