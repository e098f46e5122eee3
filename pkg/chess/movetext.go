package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveTextEntry is one element of a movetext sequence: a numbered move
// pair or single move, a comment, a numeric annotation glyph, a nested
// variation or the terminating result.
//
// The set of implementations is closed. Entries are values, built once
// during a parse and never modified afterwards.
type MoveTextEntry interface {
	movetextEntry()
	String() string
}

// MoveText is an ordered movetext sequence.
type MoveText []MoveTextEntry

// String renders the sequence space-joined in PGN movetext form.
func (mt MoveText) String() string {
	parts := make([]string, 0, len(mt))
	for _, entry := range mt {
		parts = append(parts, entry.String())
	}
	return strings.Join(parts, " ")
}

// Moves returns every move in the sequence in playing order, not
// descending into variations.
func (mt MoveText) Moves() []Move {
	var moves []Move
	for _, entry := range mt {
		switch e := entry.(type) {
		case MovePairEntry:
			moves = append(moves, e.White, e.Black)
		case SingleMoveEntry:
			moves = append(moves, e.Move)
		}
	}
	return moves
}

// MovePairEntry is a fully numbered pair of moves by White and Black.
type MovePairEntry struct {
	Number int
	White  Move
	Black  Move
}

func (MovePairEntry) movetextEntry() {}

// String renders the pair as e.g. "3. Nf3 Nc6".
func (e MovePairEntry) String() string {
	return fmt.Sprintf("%d. %s %s", e.Number, e.White, e.Black)
}

// SingleMoveEntry is a move for one side only, used when the other
// side's move at that ply is absent or separated by another entry.
type SingleMoveEntry struct {
	Number int
	Colour Colour
	Move   Move
}

func (SingleMoveEntry) movetextEntry() {}

// String renders the move as e.g. "3. Nf3" or "3... Nc6".
func (e SingleMoveEntry) String() string {
	if e.Colour == Black {
		return fmt.Sprintf("%d... %s", e.Number, e.Move)
	}
	return fmt.Sprintf("%d. %s", e.Number, e.Move)
}

// CommentEntry is a brace or line comment, carried verbatim.
type CommentEntry struct {
	Text string
}

func (CommentEntry) movetextEntry() {}

func (e CommentEntry) String() string {
	return "{" + e.Text + "}"
}

// NAGEntry is a numeric annotation glyph reference ($n).
type NAGEntry struct {
	Code int
}

func (NAGEntry) movetextEntry() {}

func (e NAGEntry) String() string {
	return "$" + strconv.Itoa(e.Code)
}

// RAVEntry is a recursive annotation variation. Its inner sequence is
// fully built before the entry wrapping it is constructed.
type RAVEntry struct {
	MoveText MoveText
}

func (RAVEntry) movetextEntry() {}

func (e RAVEntry) String() string {
	return "(" + e.MoveText.String() + ")"
}

// GameEndEntry is the terminal result marker of a movetext span.
type GameEndEntry struct {
	Result GameResult
}

func (GameEndEntry) movetextEntry() {}

func (e GameEndEntry) String() string {
	return e.Result.String()
}
