package movetext

import "github.com/hsz-gamedev/pgn.net/pkg/chess"

// Castle literals. Queen-side comes first so the king-side prefix
// cannot shadow it.
var (
	queenSideCastles = []string{"O-O-O", "0-0-0", "O - O - O", "0 - 0 - 0"}
	kingSideCastles  = []string{"O-O", "0-0", "O - O", "0 - 0"}
)

// annotationLiterals lists the evaluation glyphs, longest first where
// one prefixes another. Runs of '!' and '?' are handled separately.
var annotationLiterals = []string{
	"=/∞", "=/+", "+/=", "+/-", "-/+", "+-", "-+", "=", "∞",
	"↑↑", "↑", "○", "⇄", "∇", "Δ", "N",
}

// pCaptureSign parses the sign between or after move fragments.
func pCaptureSign(s state) result[string] {
	return literal(s, "capture sign (x or :)", "x", ":")
}

// moveFromFragments builds a move from its parsed fragments. The
// moving piece is the origin's piece when the prefix named one,
// otherwise the target's.
func moveFromFragments(moveType chess.MoveType, origin, target fragment) chess.Move {
	m := chess.Move{
		Type:        moveType,
		Piece:       target.piece,
		OriginPiece: origin.piece,
		OriginFile:  origin.file,
		OriginRank:  origin.rank,
		TargetPiece: target.piece,
		TargetFile:  target.file,
		TargetRank:  target.rank,
	}
	if origin.piece != chess.NoPiece {
		m.Piece = origin.piece
	}
	return m
}

// pInfixCapture parses origin, capture sign, target, e.g. "Qxd5".
func pInfixCapture(s state) result[chess.Move] {
	ro := pOrigin(s)
	rc := pCaptureSign(ro.next)
	if !rc.ok {
		return failure[chess.Move](s, labelMove)
	}
	rt := pTarget(rc.next)
	if !rt.ok {
		return failure[chess.Move](s, labelMove)
	}
	return success(moveFromFragments(chess.Capture, ro.value, rt.value), rt.next)
}

// pSuffixCapture parses a basic move immediately followed by a capture
// sign, e.g. "Qf4:".
func pSuffixCapture(s state) result[chess.Move] {
	rb := pBasicMove(s)
	if !rb.ok {
		return failure[chess.Move](s, labelMove)
	}
	rc := pCaptureSign(rb.next)
	if !rc.ok {
		return failure[chess.Move](s, labelMove)
	}
	m := rb.value
	m.Type = chess.Capture
	return success(m, rc.next)
}

// pSimplePawnCapture parses the bare file-takes-file form "dxe". The
// files must differ: a pawn cannot capture on its own file.
func pSimplePawnCapture(s state) result[chess.Move] {
	r1 := pFile(s)
	if !r1.ok {
		return failure[chess.Move](s, labelMove)
	}
	rc := pCaptureSign(r1.next)
	if !rc.ok {
		return failure[chess.Move](s, labelMove)
	}
	r2 := pFile(rc.next)
	if !r2.ok {
		return failure[chess.Move](s, labelMove)
	}
	if r1.value == r2.value {
		return failure[chess.Move](s, labelMove)
	}
	m := chess.Move{
		Type:        chess.Capture,
		Piece:       chess.Pawn,
		OriginFile:  r1.value,
		TargetPiece: chess.Pawn,
		TargetFile:  r2.value,
	}
	return success(m, r2.next)
}

// pBasicMove parses an optional origin followed by a target. The
// greedy origin may eat the whole square, so a failed target backs the
// parse off to target-only: "Qd5" is a queen move to d5, not an origin
// with nowhere to go.
func pBasicMove(s state) result[chess.Move] {
	ro := pOrigin(s)
	if rt := pTarget(ro.next); rt.ok {
		return success(moveFromFragments(chess.Simple, ro.value, rt.value), rt.next)
	}
	if rt := pTarget(s); rt.ok {
		return success(moveFromFragments(chess.Simple, fragment{}, rt.value), rt.next)
	}
	return failure[chess.Move](s, labelMove)
}

// pCastle parses a castling move. Only the move type is set.
func pCastle(s state) result[chess.Move] {
	if r := literal(s, labelMove, queenSideCastles...); r.ok {
		return success(chess.Move{Type: chess.CastleQueenSide}, r.next)
	}
	if r := literal(s, labelMove, kingSideCastles...); r.ok {
		return success(chess.Move{Type: chess.CastleKingSide}, r.next)
	}
	return failure[chess.Move](s, labelMove)
}

// pMove parses a base move, trying the five forms in priority order.
// The richer capture forms come before the simplified pawn capture so
// the looser grammar cannot shadow them.
func pMove(s state) result[chess.Move] {
	return choice(s, labelMove,
		pInfixCapture,
		pSuffixCapture,
		pSimplePawnCapture,
		pBasicMove,
		pCastle,
	)
}

// pPromotion parses a promotion suffix, "=Q" or "(Q)".
func pPromotion(s state) result[chess.Piece] {
	if r := literal(s, "promotion", "="); r.ok {
		rp := pPiece(r.next)
		if !rp.ok {
			return failure[chess.Piece](r.next, labelPiece)
		}
		return success(rp.value, rp.next)
	}
	if r := literal(s, "promotion", "("); r.ok {
		rp := pPiece(r.next)
		if !rp.ok {
			return failure[chess.Piece](r.next, labelPiece)
		}
		rc := literal(rp.next, `")"`, ")")
		if !rc.ok {
			return failure[chess.Piece](rp.next, `")"`)
		}
		return success(rp.value, rc.next)
	}
	return failure[chess.Piece](s, "promotion")
}

// pEnPassant parses the en-passant suffix. The dotless "ep" appears in
// older sources.
func pEnPassant(s state) result[string] {
	return literal(s, "en passant", "e.p.", "ep")
}

// pIndicator parses a check marker. Double-check forms come before
// single check so "++" is one marker, not two.
func pIndicator(s state) result[chess.CheckIndicator] {
	if r := literal(s, "check indicator", "++", "††", "dbl ch"); r.ok {
		return success(chess.DoubleCheck, r.next)
	}
	if r := literal(s, "check indicator", "+", "†", "ch"); r.ok {
		return success(chess.Check, r.next)
	}
	if r := literal(s, "check indicator", "#", "‡"); r.ok {
		return success(chess.CheckMate, r.next)
	}
	return failure[chess.CheckIndicator](s, "check indicator")
}

// pAnnotation parses an annotation glyph. A maximal run of '!' and '?'
// is always an annotation, classifying as UnknownAnnotation when the
// combination has no assigned meaning; "!!!" is therefore one glyph,
// never "!!" with a leftover.
func pAnnotation(s state) result[chess.MoveAnnotation] {
	n := 0
	for s.pos+n < len(s.input) && (s.input[s.pos+n] == '!' || s.input[s.pos+n] == '?') {
		n++
	}
	if n > 0 {
		return success(chess.ParseAnnotation(s.input[s.pos:s.pos+n]), s.advance(n))
	}
	if r := literal(s, "annotation", annotationLiterals...); r.ok {
		return success(chess.ParseAnnotation(r.value), r.next)
	}
	return failure[chess.MoveAnnotation](s, "annotation")
}

// applySuffix attaches the optional check indicator and annotation to
// a fully formed move. The combinations are tried in order: indicator
// then annotation, indicator alone, annotation alone, nothing. The
// first one consuming the whole remaining span wins, which keeps "+-"
// an evaluation glyph while "+!!" is a check plus an annotation.
func applySuffix(m chess.Move, s state) (chess.Move, bool) {
	if ri := pIndicator(s); ri.ok {
		if ra := pAnnotation(ri.next); ra.ok && ra.next.atEnd() {
			m.Indicator = ri.value
			m.Annotation = ra.value
			return m, true
		}
		if ri.next.atEnd() {
			m.Indicator = ri.value
			return m, true
		}
	}
	if ra := pAnnotation(s); ra.ok && ra.next.atEnd() {
		m.Annotation = ra.value
		return m, true
	}
	return m, s.atEnd()
}

// ParseMove parses a single move token such as "Qxd5+!!", "dxe5e.p."
// or "O-O-O" into a fully populated Move. The whole token must be
// consumed; a trailing span that is not a recognized suffix is a
// *ParseError wrapping ErrSyntax.
func ParseMove(text string) (chess.Move, error) {
	rm := pMove(newState(text))
	if !rm.ok {
		return chess.Move{}, newParseError(rm.failPos, rm.expected, excerpt(text, rm.failPos))
	}
	m := rm.value
	s := rm.next

	if !m.IsCastle() {
		if rp := pPromotion(s); rp.ok {
			m.PromotedPiece = rp.value
			s = rp.next
		}
	}
	if m.Type == chess.Capture {
		if re := pEnPassant(s); re.ok {
			m.Type = chess.CaptureEnPassant
			s = re.next
		}
	}

	m, ok := applySuffix(m, s)
	if !ok {
		return chess.Move{}, newParseError(s.pos, "check indicator or annotation", excerpt(text, s.pos))
	}
	return m, nil
}
