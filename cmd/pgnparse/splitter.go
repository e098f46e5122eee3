package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/hsz-gamedev/pgn.net/internal/worker"
)

// splitGames reads raw PGN from r and sends one job per game. A game
// starts at a tag line following a blank line; tag lines are carried
// verbatim and never parsed. Jobs are numbered from startIndex. When
// maxGames is positive at most that many jobs are sent and the rest of
// the input is left unread. Returns the number of jobs sent.
func splitGames(ctx context.Context, r io.Reader, startIndex, maxGames int, jobs chan<- worker.Job) (int, error) {
	var (
		tags      []string
		moves     strings.Builder
		prevBlank = true
		sent      int
	)

	send := func() error {
		if len(tags) == 0 && moves.Len() == 0 {
			return nil
		}
		job := worker.Job{
			Index:      startIndex + sent,
			TagSection: tags,
			Source:     moves.String(),
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job:
		}
		sent++
		tags = nil
		moves.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		// A tag line after a blank line ends the game in progress.
		// Tag lines inside movetext (no preceding blank line) are
		// left alone; a brace comment may legitimately contain one.
		if strings.HasPrefix(trimmed, "[") && prevBlank && moves.Len() != 0 {
			if err := send(); err != nil {
				return sent, err
			}
			if maxGames > 0 && sent >= maxGames {
				return sent, nil
			}
		}

		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "[") && moves.Len() == 0:
			tags = append(tags, line)
		default:
			moves.WriteString(line)
			moves.WriteByte('\n')
		}
		prevBlank = trimmed == ""
	}
	if err := scanner.Err(); err != nil {
		return sent, err
	}

	if err := send(); err != nil {
		return sent, err
	}
	return sent, nil
}

// splitFile opens a PGN file and splits it into jobs.
func splitFile(ctx context.Context, name string, startIndex, maxGames int, jobs chan<- worker.Job) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return splitGames(ctx, f, startIndex, maxGames, jobs)
}
