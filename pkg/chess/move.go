package chess

import "strings"

// Move is a single parsed move. It is a plain value: the parser returns
// fully assembled moves and nothing modifies one afterwards.
//
// The Origin and Target fields record the notation fragments as written.
// Piece is resolved from them: the origin piece when a disambiguation
// prefix named one, otherwise the target piece, otherwise Pawn. Castling
// moves carry only Type, Indicator and Annotation.
type Move struct {
	Type MoveType

	// Piece is the moving piece, NoPiece for castling.
	Piece Piece

	// Disambiguation prefix, each part optional.
	OriginPiece Piece
	OriginFile  File
	OriginRank  Rank

	// Destination. TargetPiece is the piece stated at the destination
	// fragment, Pawn when the fragment was a bare file and rank.
	TargetPiece Piece
	TargetFile  File
	TargetRank  Rank

	// PromotedPiece is set only when a promotion suffix was parsed.
	PromotedPiece Piece

	Indicator  CheckIndicator
	Annotation MoveAnnotation
}

// OriginSquare returns the disambiguation square. Either component may
// be unset when the prefix was partial.
func (m Move) OriginSquare() Square {
	return Square{File: m.OriginFile, Rank: m.OriginRank}
}

// TargetSquare returns the destination square. The rank is unset for a
// simplified pawn capture such as "dxe".
func (m Move) TargetSquare() Square {
	return Square{File: m.TargetFile, Rank: m.TargetRank}
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == CastleKingSide || m.Type == CastleQueenSide
}

// IsCapture reports whether the move captures, en passant included.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CaptureEnPassant
}

// String renders the move in canonical notation. The rendering follows
// the parsed fragments, so re-parsing it reproduces an equal Move for
// every move whose annotation has a canonical glyph.
func (m Move) String() string {
	var sb strings.Builder

	switch m.Type {
	case CastleKingSide:
		sb.WriteString("O-O")
	case CastleQueenSide:
		sb.WriteString("O-O-O")
	default:
		if m.OriginPiece != NoPiece {
			sb.WriteByte(m.OriginPiece.Letter())
		}
		if m.OriginFile != NoFile {
			sb.WriteString(m.OriginFile.String())
		}
		if m.OriginRank != NoRank {
			sb.WriteString(m.OriginRank.String())
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		if m.TargetPiece != NoPiece && m.TargetPiece != Pawn {
			sb.WriteByte(m.TargetPiece.Letter())
		}
		if m.TargetFile != NoFile {
			sb.WriteString(m.TargetFile.String())
		}
		if m.TargetRank != NoRank {
			sb.WriteString(m.TargetRank.String())
		}
		if m.PromotedPiece != NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(m.PromotedPiece.Letter())
		}
		if m.Type == CaptureEnPassant {
			sb.WriteString("e.p.")
		}
	}

	sb.WriteString(m.Indicator.Suffix())
	sb.WriteString(m.Annotation.Glyph())
	return sb.String()
}
