// Package chess provides the core types produced by movetext parsing:
// pieces, squares, moves, annotations and the movetext entry tree.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
// The zero value NoPiece means the piece is not stated.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter notation of a piece (uppercase).
// NoPiece yields a space.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromByte converts a piece letter to a Piece.
// Letters are case-insensitive. 'S' is the traditional German
// letter for the knight (Springer) and maps to Knight.
func PieceFromByte(b byte) (Piece, bool) {
	switch b {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n', 'S', 's':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoPiece, false
}

// File represents a board file (column), 'a' through 'h'.
// The zero value NoFile means the file is not stated.
type File int

const (
	NoFile File = iota
	FileA
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the lowercase letter of the file.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + int(f) - int(FileA)))
}

// FileFromByte converts a file letter ('a'..'h', either case) to a File.
func FileFromByte(b byte) (File, bool) {
	switch {
	case b >= 'a' && b <= 'h':
		return FileA + File(b-'a'), true
	case b >= 'A' && b <= 'H':
		return FileA + File(b-'A'), true
	}
	return NoFile, false
}

// Rank represents a board rank (row), 1 through 8.
// The zero value NoRank means the rank is not stated.
type Rank int

const NoRank Rank = 0

// String returns the digit of the rank.
func (r Rank) String() string {
	if r < 1 || r > 8 {
		return "-"
	}
	return string(rune('0' + int(r)))
}

// RankFromByte converts a rank digit ('1'..'8') to a Rank.
func RankFromByte(b byte) (Rank, bool) {
	if b >= '1' && b <= '8' {
		return Rank(b - '0'), true
	}
	return NoRank, false
}

// Square is a board coordinate. Either component may be unset when
// the square comes from a partial disambiguation.
type Square struct {
	File File
	Rank Rank
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// IsSet reports whether both components of the square are stated.
func (s Square) IsSet() bool {
	return s.File != NoFile && s.Rank != NoRank
}

// MoveType categorizes the recognized forms of a move.
type MoveType int

const (
	Simple MoveType = iota
	Capture
	CaptureEnPassant
	CastleKingSide
	CastleQueenSide
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	names := []string{"Simple", "Capture", "CaptureEnPassant", "CastleKingSide", "CastleQueenSide"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// CheckIndicator records the check marker attached to a move.
// The zero value NoIndicator means no marker was stated, which is
// distinct from a claim that the move does not give check.
type CheckIndicator int

const (
	NoIndicator CheckIndicator = iota
	Check
	DoubleCheck
	CheckMate
)

// String returns the string representation of a check indicator.
func (c CheckIndicator) String() string {
	names := []string{"NoIndicator", "Check", "DoubleCheck", "CheckMate"}
	if int(c) >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// IsCheck reports whether the move was marked as giving check.
// A double check is also a check.
func (c CheckIndicator) IsCheck() bool {
	return c == Check || c == DoubleCheck
}

// IsDoubleCheck reports whether the move was marked as a double check.
func (c CheckIndicator) IsDoubleCheck() bool {
	return c == DoubleCheck
}

// IsCheckMate reports whether the move was marked as checkmate.
func (c CheckIndicator) IsCheckMate() bool {
	return c == CheckMate
}

// Suffix returns the notation suffix for the indicator ("+", "++" or "#").
func (c CheckIndicator) Suffix() string {
	switch c {
	case Check:
		return "+"
	case DoubleCheck:
		return "++"
	case CheckMate:
		return "#"
	}
	return ""
}

// GameResult is the outcome recorded at the end of a movetext span.
type GameResult int

const (
	Open GameResult = iota // game unfinished or result unknown
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN form of the result.
func (r GameResult) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// ResultFromString converts a PGN result token to a GameResult.
func ResultFromString(s string) (GameResult, bool) {
	switch s {
	case "1-0":
		return WhiteWins, true
	case "0-1":
		return BlackWins, true
	case "1/2-1/2", "1/2":
		return Draw, true
	case "*":
		return Open, true
	}
	return Open, false
}
