package motion

import (
	"fmt"

	"github.com/dshills/wsjump/internal/engine/buffer"
)

// AtEndOfLine reports whether pos is at the end of its line.
func AtEndOfLine(doc Document, pos buffer.Position) (bool, error) {
	n, err := doc.LineLength(pos.Line)
	if err != nil {
		return false, err
	}
	return pos.Character == n, nil
}

// AtEndOfDocument reports whether pos is at the end of the last line.
func AtEndOfDocument(doc Document, pos buffer.Position) (bool, error) {
	eol, err := AtEndOfLine(doc, pos)
	if err != nil {
		return false, err
	}
	return eol && pos.Line == doc.LineCount()-1, nil
}

// AtStartOfLine reports whether pos is at the start of its line.
func AtStartOfLine(pos buffer.Position) bool {
	return pos.Character == 0
}

// AtStartOfDocument reports whether pos is at the start of the first line.
func AtStartOfDocument(pos buffer.Position) bool {
	return AtStartOfLine(pos) && pos.Line == 0
}

// checkCursor returns the length of the cursor's line, or an error when pos
// does not lie in doc.
func checkCursor(doc Document, pos buffer.Position) (int, error) {
	if pos.Line < 0 || pos.Line >= doc.LineCount() {
		return 0, fmt.Errorf("%w: line %d, document has %d lines",
			buffer.ErrLineOutOfRange, pos.Line, doc.LineCount())
	}
	n, err := doc.LineLength(pos.Line)
	if err != nil {
		return 0, err
	}
	if pos.Character < 0 || pos.Character > n {
		return 0, fmt.Errorf("%w: %s, line %d has %d characters",
			buffer.ErrPositionOutOfRange, pos, pos.Line, n)
	}
	return n, nil
}
