package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
	"github.com/hsz-gamedev/pgn.net/pkg/movetext"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <token>...",
		Short: "Parse single move tokens and print their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bad := 0
			for i, text := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				m, err := movetext.ParseMove(text)
				if err != nil {
					bad++
					fmt.Fprintf(out, "%s: %v\n", text, err)
					continue
				}
				printMove(out, text, m)
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d tokens failed", bad, len(args))
			}
			return nil
		},
	}
}

// printMove prints the field breakdown of a parsed move, omitting
// fields the token did not state.
func printMove(w io.Writer, text string, m chess.Move) {
	fmt.Fprintln(w, text)
	fmt.Fprintf(w, "  type:       %s\n", m.Type)
	if m.Piece != chess.NoPiece {
		fmt.Fprintf(w, "  piece:      %s\n", m.Piece)
	}
	if origin := fragmentText(m.OriginPiece, m.OriginFile, m.OriginRank); origin != "" {
		fmt.Fprintf(w, "  origin:     %s\n", origin)
	}
	if target := fragmentText(chess.NoPiece, m.TargetFile, m.TargetRank); target != "" {
		fmt.Fprintf(w, "  target:     %s\n", target)
	}
	if m.PromotedPiece != chess.NoPiece {
		fmt.Fprintf(w, "  promotion:  %s\n", m.PromotedPiece)
	}
	if m.Indicator != chess.NoIndicator {
		fmt.Fprintf(w, "  indicator:  %s\n", m.Indicator)
	}
	if m.Annotation != chess.NoAnnotation {
		fmt.Fprintf(w, "  annotation: %s (NAG $%d)\n", m.Annotation, m.Annotation.NAG())
	}
}

// fragmentText renders a notation fragment exactly as stated.
func fragmentText(p chess.Piece, f chess.File, r chess.Rank) string {
	var sb strings.Builder
	if p != chess.NoPiece {
		sb.WriteByte(p.Letter())
	}
	if f != chess.NoFile {
		sb.WriteString(f.String())
	}
	if r != chess.NoRank {
		sb.WriteString(r.String())
	}
	return sb.String()
}
