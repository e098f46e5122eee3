package movetext

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hsz-gamedev/pgn.net/pkg/chess"
)

// charClass classifies a leading byte for token dispatch.
type charClass int

const (
	clsError charClass = iota
	clsWhitespace
	clsAlpha
	clsDigit
	clsCommentOpen
	clsCommentClose
	clsSemicolon
	clsNAG
	clsRAVOpen
	clsRAVClose
	clsStar
	clsDot
	clsAnnotate
	clsGlyph
)

// Character classification table.
var chTab [256]charClass

// Move character classification table.
var moveChars [256]bool

// Bytes that may glue a check indicator or annotation onto a move.
var suffixChars [256]bool

// Runes that form a standalone annotation or check glyph.
var glyphRunes = map[rune]bool{
	'†': true, '‡': true,
	'∞': true, '○': true, '↑': true, '⇄': true, '∇': true, 'Δ': true,
	'=': true, '+': true, '-': true, '/': true,
}

// Runes that may glue onto a move as part of its suffix.
var moveGlyphRunes = map[rune]bool{
	'†': true, '‡': true,
	'∞': true, '○': true, '↑': true, '⇄': true, '∇': true, 'Δ': true,
}

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = clsWhitespace
	}

	chTab['{'] = clsCommentOpen
	chTab['}'] = clsCommentClose
	chTab[';'] = clsSemicolon
	chTab['$'] = clsNAG
	chTab['('] = clsRAVOpen
	chTab[')'] = clsRAVClose
	chTab['*'] = clsStar
	chTab['.'] = clsDot
	chTab['!'] = clsAnnotate
	chTab['?'] = clsAnnotate

	// Standalone evaluation glyphs: ASCII forms plus the lead bytes of
	// the UTF-8 symbols.
	for _, c := range []byte{'=', '+', '-', '/'} {
		chTab[c] = clsGlyph
	}
	chTab[0xce] = clsGlyph
	chTab[0xe2] = clsGlyph

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = clsDigit
	}

	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = clsAlpha
		chTab[c+32] = clsAlpha
	}

	initMoveChars()
}

// initMoveChars initializes the move and suffix character tables.
func initMoveChars() {
	// Files (a-h) and ranks, with 0 for zero-spelled castling
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
		moveChars[c-32] = true
	}
	for c := byte('0'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Piece letters, including the German S for the knight
	for _, c := range []byte{'P', 'N', 'S', 'B', 'R', 'Q', 'K', 'p', 'n', 's', 'b', 'r', 'q', 'k'} {
		moveChars[c] = true
	}

	// Capture signs, promotion, castling
	for _, c := range []byte{'x', 'X', ':', '-', '=', 'O', 'o'} {
		moveChars[c] = true
	}

	for _, c := range []byte{'+', '#', '!', '?', '=', '/', '-'} {
		suffixChars[c] = true
	}
}

// lexer splits movetext into tokens, parsing each move token as it is
// produced.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.input[l.pos]
}

// next returns the next token, skipping whitespace and dot runs.
func (l *lexer) next() (token, error) {
	for {
		if l.atEnd() {
			return token{typ: tokenEOF, pos: l.pos}, nil
		}

		ch := l.peek()
		start := l.pos

		switch chTab[ch] {
		case clsWhitespace:
			for !l.atEnd() && chTab[l.peek()] == clsWhitespace {
				l.pos++
			}

		case clsDot:
			// Stray dots between tokens carry no information.
			for !l.atEnd() && l.peek() == '.' {
				l.pos++
			}

		case clsCommentOpen:
			return l.comment(start)

		case clsCommentClose:
			return token{}, newParseError(start, "movetext token", `"}"`)

		case clsSemicolon:
			return l.lineComment(start)

		case clsNAG:
			return l.nag(start)

		case clsRAVOpen:
			l.pos++
			return token{typ: tokenRAVStart, pos: start, text: "("}, nil

		case clsRAVClose:
			l.pos++
			return token{typ: tokenRAVEnd, pos: start, text: ")"}, nil

		case clsStar:
			l.pos++
			return token{typ: tokenResult, pos: start, text: "*"}, nil

		case clsAnnotate:
			return l.annotationRun(start)

		case clsGlyph:
			return l.glyph(start)

		case clsDigit:
			return l.numeric(start)

		case clsAlpha:
			return l.move(start)

		default:
			return token{}, newParseError(start, "movetext token", excerpt(l.input, start))
		}
	}
}

// comment gathers a brace comment. The text between the braces is kept
// verbatim.
func (l *lexer) comment(start int) (token, error) {
	end := strings.IndexByte(l.input[start+1:], '}')
	if end < 0 {
		return token{}, newParseError(start, `"}"`, excerpt(l.input, len(l.input)))
	}
	text := l.input[start+1 : start+1+end]
	l.pos = start + 1 + end + 1
	return token{typ: tokenComment, pos: start, text: text}, nil
}

// lineComment gathers a semicolon comment running to the end of the
// line.
func (l *lexer) lineComment(start int) (token, error) {
	end := strings.IndexByte(l.input[start+1:], '\n')
	if end < 0 {
		text := l.input[start+1:]
		l.pos = len(l.input)
		return token{typ: tokenComment, pos: start, text: text}, nil
	}
	text := l.input[start+1 : start+1+end]
	l.pos = start + 1 + end
	return token{typ: tokenComment, pos: start, text: text}, nil
}

// nag gathers a $-prefixed numeric annotation glyph.
func (l *lexer) nag(start int) (token, error) {
	p := start + 1
	for p < len(l.input) && l.input[p] >= '0' && l.input[p] <= '9' {
		p++
	}
	if p == start+1 {
		return token{}, newParseError(start+1, "NAG digits", excerpt(l.input, start+1))
	}
	code, err := strconv.Atoi(l.input[start+1 : p])
	if err != nil {
		return token{}, newParseError(start+1, "NAG digits", excerpt(l.input, start+1))
	}
	l.pos = p
	return token{typ: tokenNAG, pos: start, text: l.input[start:p], code: code}, nil
}

// annotationRun gathers a run of ! and ? marks. Combinations with no
// assigned meaning still lex, carrying code zero.
func (l *lexer) annotationRun(start int) (token, error) {
	p := start
	for p < len(l.input) && (l.input[p] == '!' || l.input[p] == '?') {
		p++
	}
	text := l.input[start:p]
	l.pos = p
	return token{typ: tokenNAG, pos: start, text: text, code: chess.ParseAnnotation(text).NAG()}, nil
}

// glyph gathers a standalone evaluation glyph such as "+-" or "∞" and
// converts it to its numeric code. A check marker separated from its
// move lexes too, carrying code zero.
func (l *lexer) glyph(start int) (token, error) {
	p := start
	for p < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[p:])
		if !glyphRunes[r] {
			break
		}
		p += size
	}
	text := l.input[start:p]
	ann := chess.ParseAnnotation(text)
	if ann == chess.NoAnnotation || ann == chess.UnknownAnnotation {
		switch text {
		case "+", "++", "†", "††", "‡":
			l.pos = p
			return token{typ: tokenNAG, pos: start, text: text, code: 0}, nil
		}
		return token{}, newParseError(start, "annotation glyph", excerpt(l.input, start))
	}
	l.pos = p
	return token{typ: tokenNAG, pos: start, text: text, code: ann.NAG()}, nil
}

// numeric gathers a token starting with a digit: a game result, a
// zero-spelled castling move or a move number with its dots.
func (l *lexer) numeric(start int) (token, error) {
	remaining := l.input[start+1:]

	switch l.input[start] {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos = start + 3
			return token{typ: tokenResult, pos: start, text: "0-1"}, nil
		}
		if strings.HasPrefix(remaining, "-0") {
			return l.move(start)
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos = start + 3
			return token{typ: tokenResult, pos: start, text: "1-0"}, nil
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos = start + 3
			if strings.HasPrefix(l.input[l.pos:], "-1/2") {
				l.pos += 4
			}
			return token{typ: tokenResult, pos: start, text: "1/2-1/2"}, nil
		}
	}

	p := start
	for p < len(l.input) && l.input[p] >= '0' && l.input[p] <= '9' {
		p++
	}
	num, err := strconv.Atoi(l.input[start:p])
	if err != nil {
		return token{}, newParseError(start, "move number", excerpt(l.input, start))
	}

	dots := 0
	for p < len(l.input) && l.input[p] == '.' {
		p++
		dots++
	}

	l.pos = p
	return token{typ: tokenMoveNumber, pos: start, text: l.input[start:p], num: num, dots: dots}, nil
}

// move gathers one move token and parses it. The core run of move
// characters may be extended by a glued en-passant marker, a
// parenthesized promotion and a run of suffix characters.
func (l *lexer) move(start int) (token, error) {
	if !moveChars[l.input[start]] {
		return token{}, newParseError(start, labelMove, excerpt(l.input, start))
	}

	p := start
	for p < len(l.input) && moveChars[l.input[p]] {
		p++
	}

	// "dxe5e.p.": the core stops at the dot with the leading e of the
	// marker already consumed.
	if prev := l.input[p-1]; (prev == 'e' || prev == 'E') && hasFoldPrefix(l.input[p:], ".p.") {
		p += 3
	}

	// "e8(Q)" is a promotion; "e4(Nf3" opens a variation.
	if p+2 < len(l.input) && l.input[p] == '(' && l.input[p+2] == ')' {
		if _, ok := chess.PieceFromByte(l.input[p+1]); ok {
			p += 3
		}
	}

	for p < len(l.input) {
		if b := l.input[p]; b < utf8.RuneSelf {
			if !suffixChars[b] {
				break
			}
			p++
			continue
		}
		r, size := utf8.DecodeRuneInString(l.input[p:])
		if !moveGlyphRunes[r] {
			break
		}
		p += size
	}

	text := l.input[start:p]
	m, err := ParseMove(text)
	if err != nil {
		// "N" on its own is the novelty glyph, not a knight move.
		if ann := chess.ParseAnnotation(text); ann != chess.NoAnnotation && ann != chess.UnknownAnnotation {
			l.pos = p
			return token{typ: tokenNAG, pos: start, text: text, code: ann.NAG()}, nil
		}
		if perr, ok := err.(*ParseError); ok {
			return token{}, newParseError(start+perr.Pos, perr.Expected, perr.Got)
		}
		return token{}, err
	}
	l.pos = p
	return token{typ: tokenMove, pos: start, text: text, move: m}, nil
}

// hasFoldPrefix reports whether s starts with prefix, ignoring case.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
