package movetext

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is the sentinel wrapped by every terminal parse failure.
// Use errors.Is(err, ErrSyntax) to distinguish malformed notation from
// other failures.
var ErrSyntax = errors.New("movetext syntax error")

// ParseError reports a terminal parse failure: the byte offset it
// occurred at and the construct that was expected there. A failed
// alternative inside the grammar is not an error; a ParseError only
// arises when no alternative matched.
type ParseError struct {
	Err      error  // the underlying error, usually ErrSyntax
	Pos      int    // byte offset in the parsed text
	Expected string // human-readable construct label
	Got      string // preformatted description of what was found
}

// Error returns a formatted message with offset and context.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("offset %d: expected %s", e.Pos, e.Expected)
	if e.Got != "" {
		msg += fmt.Sprintf(", got %s", e.Got)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError builds a ParseError wrapping ErrSyntax.
func newParseError(pos int, expected, got string) *ParseError {
	return &ParseError{Err: ErrSyntax, Pos: pos, Expected: expected, Got: got}
}

// excerpt returns a short quoted sample of the input starting at pos,
// for use as the Got field of a ParseError.
func excerpt(input string, pos int) string {
	if pos >= len(input) {
		return "end of input"
	}
	end := pos + 10
	if end > len(input) {
		end = len(input)
	}
	return strconv.Quote(input[pos:end])
}
