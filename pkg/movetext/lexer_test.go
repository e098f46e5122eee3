package movetext

import (
	"errors"
	"testing"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
)

// lexAll runs the lexer over src and collects every token up to EOF.
func lexAll(t *testing.T, src string) []token {
	t.Helper()
	lx := newLexer(src)
	var toks []token
	for {
		tok, err := lx.next()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		if tok.typ == tokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexTokenStream(t *testing.T) {
	src := "1. e4 e5 {good} 2. Nf3 $1 (2. f4) 1-0"
	toks := lexAll(t, src)

	want := []tokenType{
		tokenMoveNumber, tokenMove, tokenMove, tokenComment,
		tokenMoveNumber, tokenMove, tokenNAG,
		tokenRAVStart, tokenMoveNumber, tokenMove, tokenRAVEnd,
		tokenResult,
	}
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d", len(toks), len(want))
	}
	for i, typ := range want {
		if toks[i].typ != typ {
			t.Errorf("token %d = %v, want %v", i, toks[i].typ, typ)
		}
	}
}

func TestLexMoveGluing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"en passant marker", "dxe5e.p.", []string{"dxe5e.p."}},
		{"suffix run", "Qxd5+!!", []string{"Qxd5+!!"}},
		{"promotion parens", "e8(Q)+", []string{"e8(Q)+"}},
		{"variation is not a promotion", "e4(Nf3)", []string{"e4", "(", "Nf3", ")"}},
		{"evaluation tail", "e4+/-", []string{"e4+/-"}},
		{"dagger tail", "Bb5††", []string{"Bb5††"}},
		{"zero castling", "0-0-0#", []string{"0-0-0#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if len(toks) != len(tt.want) {
				t.Fatalf("token count = %d, want %d", len(toks), len(tt.want))
			}
			for i, text := range tt.want {
				if toks[i].text != text {
					t.Errorf("token %d = %q, want %q", i, toks[i].text, text)
				}
			}
		})
	}
}

func TestLexComments(t *testing.T) {
	toks := lexAll(t, "{ spaced  out }")
	if len(toks) != 1 || toks[0].typ != tokenComment {
		t.Fatalf("tokens = %+v, want one comment", toks)
	}
	if got := toks[0].text; got != " spaced  out " {
		t.Errorf("comment text = %q, want %q", got, " spaced  out ")
	}

	toks = lexAll(t, "; to end of line\ne4")
	if len(toks) != 2 {
		t.Fatalf("token count = %d, want 2", len(toks))
	}
	if got := toks[0].text; got != " to end of line" {
		t.Errorf("line comment text = %q, want %q", got, " to end of line")
	}
	if toks[1].typ != tokenMove {
		t.Errorf("second token = %v, want %v", toks[1].typ, tokenMove)
	}
}

func TestLexCommentErrors(t *testing.T) {
	lx := newLexer("{never closed")
	if _, err := lx.next(); !errors.Is(err, ErrSyntax) {
		t.Errorf("unterminated comment error = %v, want ErrSyntax", err)
	}

	lx = newLexer("} e4")
	if _, err := lx.next(); !errors.Is(err, ErrSyntax) {
		t.Errorf("stray brace error = %v, want ErrSyntax", err)
	}
}

func TestLexNAGCodes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"numeric", "$12", 12},
		{"good", "!", 1},
		{"brilliant", "!!", 3},
		{"blunder", "??", 4},
		{"interesting", "!?", 5},
		{"mind blowing has no code", "!!!", 0},
		{"unknown run", "!?!?", 0},
		{"decisive advantage", "+-", 18},
		{"unclear", "∞", 13},
		{"even", "=", 10},
		{"initiative", "↑", 36},
		{"novelty", "N", 146},
		{"detached check", "†", 0},
		{"detached double check", "††", 0},
		{"detached mate", "‡", 0},
		{"detached plus", "+", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if len(toks) != 1 || toks[0].typ != tokenNAG {
				t.Fatalf("tokens = %+v, want one NAG", toks)
			}
			if toks[0].code != tt.want {
				t.Errorf("code = %d, want %d", toks[0].code, tt.want)
			}
		})
	}
}

func TestLexNAGErrors(t *testing.T) {
	lx := newLexer("$x")
	if _, err := lx.next(); !errors.Is(err, ErrSyntax) {
		t.Errorf("bare dollar error = %v, want ErrSyntax", err)
	}

	lx = newLexer("--")
	if _, err := lx.next(); !errors.Is(err, ErrSyntax) {
		t.Errorf("null move error = %v, want ErrSyntax", err)
	}
}

func TestLexResults(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1-0", "1-0"},
		{"0-1", "0-1"},
		{"1/2-1/2", "1/2-1/2"},
		{"1/2", "1/2-1/2"},
		{"*", "*"},
	}

	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if len(toks) != 1 || toks[0].typ != tokenResult {
			t.Fatalf("lexing %q: tokens = %+v, want one result", tt.src, toks)
		}
		if toks[0].text != tt.want {
			t.Errorf("lexing %q: text = %q, want %q", tt.src, toks[0].text, tt.want)
		}
	}
}

func TestLexMoveNumbers(t *testing.T) {
	tests := []struct {
		src      string
		wantNum  int
		wantDots int
	}{
		{"1.", 1, 1},
		{"2...", 2, 3},
		{"14", 14, 0},
	}

	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if len(toks) != 1 || toks[0].typ != tokenMoveNumber {
			t.Fatalf("lexing %q: tokens = %+v, want one move number", tt.src, toks)
		}
		if toks[0].num != tt.wantNum || toks[0].dots != tt.wantDots {
			t.Errorf("lexing %q: num = %d dots = %d, want %d and %d",
				tt.src, toks[0].num, toks[0].dots, tt.wantNum, tt.wantDots)
		}
	}
}

func TestLexSkipsStrayDots(t *testing.T) {
	toks := lexAll(t, "... e5 .")
	if len(toks) != 1 || toks[0].typ != tokenMove {
		t.Fatalf("tokens = %+v, want one move", toks)
	}
}

func TestLexCastleMoves(t *testing.T) {
	toks := lexAll(t, "0-0")
	if len(toks) != 1 || toks[0].typ != tokenMove {
		t.Fatalf("tokens = %+v, want one move", toks)
	}
	if toks[0].move.Type != chess.CastleKingSide {
		t.Errorf("move type = %v, want %v", toks[0].move.Type, chess.CastleKingSide)
	}

	toks = lexAll(t, "0-0-0#")
	if len(toks) != 1 {
		t.Fatalf("token count = %d, want 1", len(toks))
	}
	if toks[0].move.Type != chess.CastleQueenSide {
		t.Errorf("move type = %v, want %v", toks[0].move.Type, chess.CastleQueenSide)
	}
	if toks[0].move.Indicator != chess.CheckMate {
		t.Errorf("indicator = %v, want %v", toks[0].move.Indicator, chess.CheckMate)
	}
}

func TestLexErrorPosition(t *testing.T) {
	lx := newLexer("1. e4 axa")
	for {
		tok, err := lx.next()
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if perr.Pos != 6 {
				t.Errorf("Pos = %d, want 6", perr.Pos)
			}
			return
		}
		if tok.typ == tokenEOF {
			t.Fatal("expected an error before EOF")
		}
	}
}

func TestLexTokenPositions(t *testing.T) {
	toks := lexAll(t, "1. e4 {c}")
	wantPos := []int{0, 3, 6}
	if len(toks) != len(wantPos) {
		t.Fatalf("token count = %d, want %d", len(toks), len(wantPos))
	}
	for i, pos := range wantPos {
		if toks[i].pos != pos {
			t.Errorf("token %d pos = %d, want %d", i, toks[i].pos, pos)
		}
	}
}
