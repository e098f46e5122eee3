package movetext

import (
	"strings"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
)

// Expected-construct labels surfaced in parse errors.
const (
	labelPiece = "Piece (N, B, R, Q, K or P)"
	labelFile  = "File letter (A..H)"
	labelRank  = "Rank digit (1..8)"
	labelMove  = "Move (e.g. Qc4 or e2e4 or 0-0-0)"
)

// state is an immutable view of the input with a cursor. It is passed
// and returned by value: a failed alternative leaves the caller's
// state untouched, which is all the backtracking there is.
type state struct {
	input string
	pos   int
}

func newState(input string) state {
	return state{input: input}
}

// atEnd reports whether the cursor is past the last byte.
func (s state) atEnd() bool {
	return s.pos >= len(s.input)
}

// peek returns the byte at the cursor, 0 at end of input.
func (s state) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.input[s.pos]
}

// advance returns the state moved n bytes forward.
func (s state) advance(n int) state {
	s.pos += n
	return s
}

// rest returns the unread input.
func (s state) rest() string {
	return s.input[s.pos:]
}

// result is the outcome of one parse attempt. A success carries the
// value and the state after the match. A failure carries the position
// it occurred at and a label for what was expected; it never consumes
// input, so the caller retries the next alternative from where it was.
type result[T any] struct {
	ok       bool
	value    T
	next     state
	failPos  int
	expected string
}

func success[T any](value T, next state) result[T] {
	return result[T]{ok: true, value: value, next: next}
}

func failure[T any](s state, expected string) result[T] {
	return result[T]{failPos: s.pos, expected: expected}
}

// choice tries each alternative from the same state and returns the
// first success. When every alternative fails, the failure is reported
// at the start position under the supplied label.
func choice[T any](s state, expected string, alts ...func(state) result[T]) result[T] {
	for _, alt := range alts {
		if r := alt(s); r.ok {
			return r
		}
	}
	return failure[T](s, expected)
}

// literal matches the first candidate that prefixes the input,
// case-insensitively, and returns the candidate's own spelling.
// Candidates sharing a prefix must be listed longest first.
func literal(s state, expected string, candidates ...string) result[string] {
	rest := s.rest()
	for _, cand := range candidates {
		if len(rest) >= len(cand) && strings.EqualFold(rest[:len(cand)], cand) {
			return success(cand, s.advance(len(cand)))
		}
	}
	return failure[string](s, expected)
}

// pPiece parses one piece letter. The letter S (the German Springer)
// is a knight.
func pPiece(s state) result[chess.Piece] {
	if p, ok := chess.PieceFromByte(s.peek()); ok {
		return success(p, s.advance(1))
	}
	return failure[chess.Piece](s, labelPiece)
}

// pFile parses one file letter, either case.
func pFile(s state) result[chess.File] {
	if f, ok := chess.FileFromByte(s.peek()); ok {
		return success(f, s.advance(1))
	}
	return failure[chess.File](s, labelFile)
}

// pRank parses one rank digit.
func pRank(s state) result[chess.Rank] {
	if r, ok := chess.RankFromByte(s.peek()); ok {
		return success(r, s.advance(1))
	}
	return failure[chess.Rank](s, labelRank)
}
