package movetext

import "github.com/hsz-gamedev/pgn.net/pkg/chess"

// fragment is one side of a move: a piece, file and rank, any of which
// may be unset when it came from a disambiguation prefix.
type fragment struct {
	piece chess.Piece
	file  chess.File
	rank  chess.Rank
}

// pTarget parses a move destination: an explicit piece letter followed
// by file and rank, or a bare file and rank for a pawn destination.
// All three parts are present in the result, the piece defaulting to
// Pawn.
func pTarget(s state) result[fragment] {
	if rp := pPiece(s); rp.ok {
		if rf := pFile(rp.next); rf.ok {
			if rr := pRank(rf.next); rr.ok {
				return success(fragment{piece: rp.value, file: rf.value, rank: rr.value}, rr.next)
			}
		}
		// the letter was not a piece prefix after all; retry as a
		// bare square, so "b4" is a pawn move and not a bishop
	}
	rf := pFile(s)
	if !rf.ok {
		return failure[fragment](s, labelFile)
	}
	rr := pRank(rf.next)
	if !rr.ok {
		return failure[fragment](rf.next, labelRank)
	}
	return success(fragment{piece: chess.Pawn, file: rf.value, rank: rr.value}, rr.next)
}

// pOrigin parses a disambiguation prefix: an optional piece, file and
// rank in that order. It never fails and is greedy, so it may consume
// the square a following pTarget needs; move-form parsers attempt the
// origin and target as a unit and back off to target-only.
func pOrigin(s state) result[fragment] {
	var frag fragment
	if r := pPiece(s); r.ok {
		frag.piece = r.value
		s = r.next
	}
	if r := pFile(s); r.ok {
		frag.file = r.value
		s = r.next
	}
	if r := pRank(s); r.ok {
		frag.rank = r.value
		s = r.next
	}
	return success(frag, s)
}
