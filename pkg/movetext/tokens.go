package movetext

import "github.com/hsz-gamedev/pgn.net/pkg/chess"

// tokenType identifies a lexed movetext token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenMove
	tokenMoveNumber
	tokenComment
	tokenNAG
	tokenRAVStart
	tokenRAVEnd
	tokenResult
)

var tokenTypeNames = []string{
	"end of input",
	"move",
	"move number",
	"comment",
	"NAG",
	"variation start",
	"variation end",
	"game result",
}

func (t tokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown token"
}

// token is one lexed unit of movetext. Which fields are set depends on
// the type: move tokens carry the parsed move, move numbers the number
// and the count of trailing dots, NAGs the numeric code.
type token struct {
	typ  tokenType
	pos  int
	text string
	move chess.Move
	num  int
	dots int
	code int
}
