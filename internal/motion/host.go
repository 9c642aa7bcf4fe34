package motion

import "github.com/dshills/wsjump/internal/engine/buffer"

// Document is the read side of the host: line lengths, offset/position
// conversion and range extraction. *buffer.Buffer and *buffer.Snapshot
// implement it.
type Document interface {
	// LineLength returns the length of a line in characters.
	LineLength(line int) (int, error)

	// LineCount returns the number of lines in the document.
	LineCount() int

	// OffsetAt converts a position to a character offset.
	OffsetAt(pos buffer.Position) (int, error)

	// PositionAt converts a character offset to a position.
	PositionAt(offset int) (buffer.Position, error)

	// TextRange returns the text covered by r.
	TextRange(r buffer.Range) (string, error)
}

// Host gives the engine access to the document, the cursor and the user.
type Host interface {
	Document

	// Cursor returns the start of the current selection.
	Cursor() (buffer.Position, error)

	// SetCursor collapses the selection to a single point at pos.
	SetCursor(pos buffer.Position) error

	// Notify shows an informational message. Delivery is best effort.
	Notify(message string)
}
