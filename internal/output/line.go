package output

import (
	"fmt"
	"io"
)

// LineWriter emits space-separated tokens with line length control.
// A width of 0 disables wrapping. The first write error is kept and
// later writes become no-ops.
type LineWriter struct {
	w          io.Writer
	width      int
	lineLen    int
	needsSpace bool
	err        error
}

// NewLineWriter creates a line writer wrapping at width columns.
func NewLineWriter(w io.Writer, width int) *LineWriter {
	return &LineWriter{
		w:     w,
		width: width,
	}
}

// Write writes a token, preceded by a space or a line break depending
// on the remaining room on the current line.
func (lw *LineWriter) Write(s string) {
	if lw.err != nil || s == "" {
		return
	}
	if lw.needsSpace {
		if lw.width > 0 && lw.lineLen+1+len(s) > lw.width {
			lw.print("\n")
			lw.lineLen = 0
		} else {
			lw.print(" ")
			lw.lineLen++
		}
	}
	lw.print(s)
	lw.lineLen += len(s)
	lw.needsSpace = true
}

// WriteNoSpace writes a token glued to the previous one.
func (lw *LineWriter) WriteNoSpace(s string) {
	if lw.err != nil {
		return
	}
	lw.print(s)
	lw.lineLen += len(s)
	lw.needsSpace = true
}

// Glue makes the next Write attach without a separating space.
func (lw *LineWriter) Glue() {
	lw.needsSpace = false
}

// NewLine starts a new line.
func (lw *LineWriter) NewLine() {
	if lw.err != nil {
		return
	}
	lw.print("\n")
	lw.lineLen = 0
	lw.needsSpace = false
}

// Err returns the first error encountered while writing.
func (lw *LineWriter) Err() error {
	return lw.err
}

func (lw *LineWriter) print(s string) {
	if _, err := fmt.Fprint(lw.w, s); err != nil && lw.err == nil {
		lw.err = err
	}
}
