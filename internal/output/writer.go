// Package output renders parsed games back into PGN text.
package output

import (
	"fmt"
	"io"

	"github.com/hsz-gamedev/pgn.net/internal/config"
	"github.com/hsz-gamedev/pgn.net/pkg/chess"
)

// PGNWriter writes games in PGN format: the tag section verbatim, a
// blank line, then the movetext wrapped at the configured width.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format, ending with a blank line.
// A game whose movetext has no terminating result is written with "*".
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	for _, line := range game.TagSection {
		if _, err := fmt.Fprintln(pw.w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(pw.w); err != nil {
		return err
	}

	lw := NewLineWriter(pw.w, pw.cfg.Output.Width)
	writeMoveText(lw, game.MoveText)
	if !hasResult(game.MoveText) {
		lw.Write(chess.Open.String())
	}
	lw.NewLine()
	if err := lw.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(pw.w)
	return err
}

// writeMoveText writes a movetext sequence token by token so that
// lines break between tokens, never inside one.
func writeMoveText(lw *LineWriter, mt chess.MoveText) {
	for _, entry := range mt {
		switch e := entry.(type) {
		case chess.MovePairEntry:
			lw.Write(fmt.Sprintf("%d.", e.Number))
			lw.Write(e.White.String())
			lw.Write(e.Black.String())
		case chess.SingleMoveEntry:
			if e.Colour == chess.Black {
				lw.Write(fmt.Sprintf("%d...", e.Number))
			} else {
				lw.Write(fmt.Sprintf("%d.", e.Number))
			}
			lw.Write(e.Move.String())
		case chess.RAVEntry:
			lw.Write("(")
			lw.Glue()
			writeMoveText(lw, e.MoveText)
			lw.WriteNoSpace(")")
		default:
			lw.Write(entry.String())
		}
	}
}

// hasResult reports whether the sequence carries a terminating result.
func hasResult(mt chess.MoveText) bool {
	for _, entry := range mt {
		if _, ok := entry.(chess.GameEndEntry); ok {
			return true
		}
	}
	return false
}
