package chess

import "testing"

func testMove(piece Piece, file File, rank Rank) Move {
	return Move{Type: Simple, Piece: piece, TargetPiece: piece, TargetFile: file, TargetRank: rank}
}

func TestMoveTextEntryString(t *testing.T) {
	pair := MovePairEntry{
		Number: 1,
		White:  testMove(Pawn, FileE, 4),
		Black:  testMove(Pawn, FileE, 5),
	}
	if got := pair.String(); got != "1. e4 e5" {
		t.Errorf("MovePairEntry.String() = %q, want %q", got, "1. e4 e5")
	}

	white := SingleMoveEntry{Number: 2, Colour: White, Move: testMove(Knight, FileF, 3)}
	if got := white.String(); got != "2. Nf3" {
		t.Errorf("SingleMoveEntry.String() = %q, want %q", got, "2. Nf3")
	}

	black := SingleMoveEntry{Number: 2, Colour: Black, Move: testMove(Knight, FileC, 6)}
	if got := black.String(); got != "2... Nc6" {
		t.Errorf("SingleMoveEntry.String() = %q, want %q", got, "2... Nc6")
	}

	comment := CommentEntry{Text: "Best by test"}
	if got := comment.String(); got != "{Best by test}" {
		t.Errorf("CommentEntry.String() = %q, want %q", got, "{Best by test}")
	}

	nag := NAGEntry{Code: 3}
	if got := nag.String(); got != "$3" {
		t.Errorf("NAGEntry.String() = %q, want %q", got, "$3")
	}

	rav := RAVEntry{MoveText: MoveText{white}}
	if got := rav.String(); got != "(2. Nf3)" {
		t.Errorf("RAVEntry.String() = %q, want %q", got, "(2. Nf3)")
	}

	end := GameEndEntry{Result: WhiteWins}
	if got := end.String(); got != "1-0" {
		t.Errorf("GameEndEntry.String() = %q, want %q", got, "1-0")
	}
}

func TestMoveTextString(t *testing.T) {
	mt := MoveText{
		MovePairEntry{Number: 1, White: testMove(Pawn, FileE, 4), Black: testMove(Pawn, FileE, 5)},
		CommentEntry{Text: "book"},
		GameEndEntry{Result: Draw},
	}

	want := "1. e4 e5 {book} 1/2-1/2"
	if got := mt.String(); got != want {
		t.Errorf("MoveText.String() = %q, want %q", got, want)
	}
}

func TestMoveTextMoves(t *testing.T) {
	mt := MoveText{
		MovePairEntry{Number: 1, White: testMove(Pawn, FileE, 4), Black: testMove(Pawn, FileE, 5)},
		RAVEntry{MoveText: MoveText{
			SingleMoveEntry{Number: 1, Colour: Black, Move: testMove(Pawn, FileC, 5)},
		}},
		SingleMoveEntry{Number: 2, Colour: White, Move: testMove(Knight, FileF, 3)},
	}

	moves := mt.Moves()
	if len(moves) != 3 {
		t.Fatalf("len(Moves()) = %d, want 3", len(moves))
	}
	if moves[2].Piece != Knight {
		t.Errorf("moves[2].Piece = %v, want Knight", moves[2].Piece)
	}
}
