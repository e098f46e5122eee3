// Package movetext parses PGN movetext into typed moves and entries.
//
// ParseMove handles a single move token such as "Qxd5+!!" or "O-O-O",
// resolving piece, origin, target, promotion, en passant, check
// markers and annotation glyphs. Parse handles a whole movetext
// string: numbered moves, brace and semicolon comments, numeric
// annotation glyphs, recursive variations and the game result, in
// stream order. Parsing is purely grammatical; no board is kept and no
// legality is checked.
package movetext

import (
	"strconv"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
)

// assembler turns the token stream into movetext entries.
type assembler struct {
	lx  *lexer
	tok token
}

// Parse parses a complete movetext string. Move pairs are assembled
// from the numbering and the alternation of the moves; comments, NAGs,
// variations and the result appear in the order they were written.
func Parse(src string) (chess.MoveText, error) {
	a := &assembler{lx: newLexer(src)}
	if err := a.advance(); err != nil {
		return nil, err
	}
	return a.sequence(0, 1, chess.White)
}

func (a *assembler) advance() error {
	tok, err := a.lx.next()
	if err != nil {
		return err
	}
	a.tok = tok
	return nil
}

// got describes the current token for an error message.
func (a *assembler) got() string {
	if a.tok.typ == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(a.tok.text)
}

// sequence assembles entries until the end of the input, or until the
// closing parenthesis when inside a variation. num and colour say
// which move is due next; a variation starts from the number and
// colour of the move it replaces.
func (a *assembler) sequence(depth int, num int, colour chess.Colour) (chess.MoveText, error) {
	var entries chess.MoveText

	// A white move is held back until its black reply arrives, so the
	// two can form one pair entry. Anything else arriving in between
	// flushes it as a single-move entry.
	var (
		pendingSet  bool
		pendingNum  int
		pendingMove chess.Move
	)
	flush := func() {
		if pendingSet {
			entries = append(entries, chess.SingleMoveEntry{
				Number: pendingNum,
				Colour: chess.White,
				Move:   pendingMove,
			})
			pendingSet = false
		}
	}

	var (
		lastNum    int
		lastColour chess.Colour
		haveLast   bool
	)
	ended := false

	for {
		if ended && a.tok.typ != tokenRAVEnd && a.tok.typ != tokenEOF {
			return nil, newParseError(a.tok.pos, "end of game", a.got())
		}

		switch a.tok.typ {
		case tokenMoveNumber:
			if pendingSet && a.tok.num == pendingNum && a.tok.dots >= 2 {
				// "1. e4 1... e5" numbers the black reply again;
				// the pending pair stays open.
				colour = chess.Black
			} else {
				flush()
				num = a.tok.num
				colour = chess.White
				if a.tok.dots >= 2 {
					colour = chess.Black
				}
			}

		case tokenMove:
			switch {
			case pendingSet:
				entries = append(entries, chess.MovePairEntry{
					Number: pendingNum,
					White:  pendingMove,
					Black:  a.tok.move,
				})
				pendingSet = false
				lastNum, lastColour = pendingNum, chess.Black
				num = pendingNum + 1
				colour = chess.White
			case colour == chess.White:
				pendingSet = true
				pendingNum = num
				pendingMove = a.tok.move
				lastNum, lastColour = num, chess.White
				colour = chess.Black
			default:
				entries = append(entries, chess.SingleMoveEntry{
					Number: num,
					Colour: chess.Black,
					Move:   a.tok.move,
				})
				lastNum, lastColour = num, chess.Black
				num++
				colour = chess.White
			}
			haveLast = true

		case tokenComment:
			flush()
			entries = append(entries, chess.CommentEntry{Text: a.tok.text})

		case tokenNAG:
			flush()
			entries = append(entries, chess.NAGEntry{Code: a.tok.code})

		case tokenRAVStart:
			flush()
			innerNum, innerColour := num, colour
			if haveLast {
				innerNum, innerColour = lastNum, lastColour
			}
			if err := a.advance(); err != nil {
				return nil, err
			}
			inner, err := a.sequence(depth+1, innerNum, innerColour)
			if err != nil {
				return nil, err
			}
			entries = append(entries, chess.RAVEntry{MoveText: inner})
			continue

		case tokenResult:
			flush()
			result, _ := chess.ResultFromString(a.tok.text)
			entries = append(entries, chess.GameEndEntry{Result: result})
			ended = true

		case tokenRAVEnd:
			if depth == 0 {
				return nil, newParseError(a.tok.pos, "movetext token", a.got())
			}
			flush()
			if err := a.advance(); err != nil {
				return nil, err
			}
			return entries, nil

		case tokenEOF:
			if depth > 0 {
				return nil, newParseError(a.tok.pos, `")"`, a.got())
			}
			flush()
			return entries, nil
		}

		if err := a.advance(); err != nil {
			return nil, err
		}
	}
}
