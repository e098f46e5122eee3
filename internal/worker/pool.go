// Package worker runs game parsing across a pool of goroutines while
// preserving input order.
package worker

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
	"github.com/hsz-gamedev/pgn.net/pkg/movetext"
)

// Job is one game to parse: its tag lines kept verbatim and the raw
// movetext. Index is the game's position in the input.
type Job struct {
	Index      int
	TagSection []string
	Source     string
}

// Result is the outcome of parsing one job. Err carries the parse
// failure for that game alone; other games are unaffected.
type Result struct {
	Index int
	Game  *chess.Game
	Err   error
}

// Pool parses game sources in parallel.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given number of workers, at least
// one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run consumes jobs until the channel closes and returns the results
// ordered by job index. A malformed game is reported in its own
// Result; Run itself only fails when the context is cancelled.
func (p *Pool) Run(ctx context.Context, jobs <-chan Job) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan Result, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for {
				select {
				case job, ok := <-jobs:
					if !ok {
						return nil
					}
					select {
					case results <- parse(job):
					case <-ctx.Done():
						return ctx.Err()
					}
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var out []Result
	for res := range results {
		out = append(out, res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func parse(job Job) Result {
	mt, err := movetext.Parse(job.Source)
	if err != nil {
		return Result{Index: job.Index, Err: err}
	}
	return Result{
		Index: job.Index,
		Game:  &chess.Game{TagSection: job.TagSection, MoveText: mt},
	}
}
