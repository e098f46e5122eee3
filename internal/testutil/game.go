package testutil

import (
	"testing"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
	"github.com/hsz-gamedev/pgn.net/pkg/movetext"
)

// ParseTestMoveText parses a movetext string, returning nil when it
// does not parse. Use this where a parse failure is an acceptable
// outcome.
func ParseTestMoveText(src string) chess.MoveText {
	mt, err := movetext.Parse(src)
	if err != nil {
		return nil
	}
	return mt
}

// MustParseMoveText parses a movetext string and aborts the test when
// it does not parse.
func MustParseMoveText(t *testing.T, src string) chess.MoveText {
	t.Helper()
	mt, err := movetext.Parse(src)
	if err != nil {
		t.Fatalf("failed to parse test movetext %q: %v", src, err)
	}
	return mt
}

// MustParseMove parses a single move token and aborts the test when it
// does not parse.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := movetext.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse test move %q: %v", text, err)
	}
	return m
}

// NewTestGame builds a game from a movetext string and optional tag
// lines, aborting the test when the movetext does not parse.
func NewTestGame(t *testing.T, src string, tags ...string) *chess.Game {
	t.Helper()
	return &chess.Game{
		TagSection: tags,
		MoveText:   MustParseMoveText(t, src),
	}
}
