package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestParseCommand(t *testing.T) {
	in := `[Event "One"]

1. e4 e5 1-0

[Event "Two"]

1. d4 d5 *
`
	out, err := executeCmd(t, in, "parse")
	require.NoError(t, err)

	want := `[Event "One"]

1. e4 e5 1-0

[Event "Two"]

1. d4 d5 *

`
	assert.Equal(t, want, out)
}

func TestParseCommandNormalizes(t *testing.T) {
	out, err := executeCmd(t, "1.e4 c5 2.Nf3 d6 1/2\n", "parse")
	require.NoError(t, err)
	assert.Equal(t, "\n1. e4 c5 2. Nf3 d6 1/2-1/2\n\n", out)
}

func TestParseCommandWidth(t *testing.T) {
	in := "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0\n"
	out, err := executeCmd(t, in, "parse", "--width", "20")
	require.NoError(t, err)
	assert.Equal(t, "\n1. e4 e5 2. Nf3 Nc6\n3. Bb5 a6 1-0\n\n", out)
}

func TestParseCommandSkipsBadGames(t *testing.T) {
	in := "1. e4 axa *\n\n[Event \"Good\"]\n\n1. d4 *\n"
	out, err := executeCmd(t, in, "parse", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "[Event \"Good\"]\n\n1. d4 *\n\n", out)
}

func TestParseCommandMaxGames(t *testing.T) {
	in := `[Event "1"]

1. e4 *

[Event "2"]

1. d4 *

[Event "3"]

1. c4 *
`
	out, err := executeCmd(t, in, "parse", "--max-games", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "1. e4 *")
	assert.Contains(t, out, "1. d4 *")
	assert.NotContains(t, out, "1. c4 *")
}

func TestParseCommandRejectsBadWidth(t *testing.T) {
	_, err := executeCmd(t, "1. e4 *\n", "parse", "--width", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.width")
}

func TestCheckCommand(t *testing.T) {
	in := "1. e4 e5 *\n\n[Event \"Bad\"]\n\n1. e4 axa\n"
	out, err := executeCmd(t, in, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 games failed")
	assert.Contains(t, out, "game 1: ok, 2 plies")
	assert.Contains(t, out, "game 2: offset 6")
}

func TestCheckCommandAllOK(t *testing.T) {
	out, err := executeCmd(t, "1. e4 e5 (1... c5) 2. Nf3 1-0\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "game 1: ok, 3 plies")
	assert.Contains(t, out, "1 games ok")
}

func TestCheckCommandQuiet(t *testing.T) {
	out, err := executeCmd(t, "1. e4 *\n", "check", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckCommandFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pgn")
	second := filepath.Join(dir, "b.pgn")
	require.NoError(t, os.WriteFile(first, []byte("[Event \"A\"]\n\n1. e4 *\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("1. d4 d5 *\n"), 0o644))

	out, err := executeCmd(t, "", "check", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "game 1: ok, 1 plies")
	assert.Contains(t, out, "game 2: ok, 2 plies")
	assert.Contains(t, out, "2 games ok")
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, err := executeCmd(t, "", "check", filepath.Join(t.TempDir(), "nope.pgn"))
	require.Error(t, err)
}

func TestMoveCommand(t *testing.T) {
	out, err := executeCmd(t, "", "move", "Qxd5+!!")
	require.NoError(t, err)

	want := `Qxd5+!!
  type:       Capture
  piece:      Queen
  origin:     Q
  target:     d5
  indicator:  Check
  annotation: Brilliant (NAG $3)
`
	assert.Equal(t, want, out)
}

func TestMoveCommandCastle(t *testing.T) {
	out, err := executeCmd(t, "", "move", "O-O-O#")
	require.NoError(t, err)

	want := `O-O-O#
  type:       CastleQueenSide
  indicator:  CheckMate
`
	assert.Equal(t, want, out)
}

func TestMoveCommandMultiple(t *testing.T) {
	out, err := executeCmd(t, "", "move", "e4", "dxe8=N")
	require.NoError(t, err)

	want := `e4
  type:       Simple
  piece:      Pawn
  target:     e4

dxe8=N
  type:       Capture
  piece:      Pawn
  origin:     d
  target:     e8
  promotion:  Knight
`
	assert.Equal(t, want, out)
}

func TestMoveCommandBadToken(t *testing.T) {
	out, err := executeCmd(t, "", "move", "e4", "Z9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 tokens failed")
	assert.Contains(t, out, "Z9: offset 0")
}

func TestRootVersion(t *testing.T) {
	out, err := executeCmd(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "pgnparse version 0.1.0\n", out)
}
