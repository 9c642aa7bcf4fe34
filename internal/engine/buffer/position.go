package buffer

import (
	"fmt"
	"sync/atomic"
)

// Position is a line and character coordinate.
// Both Line and Character are 0-indexed. Character counts Unicode code
// points from the start of the line, so a Character equal to the line
// length sits at the end of the line, before the line break.
type Position struct {
	Line      int
	Character int
}

// NewPosition creates a position.
func NewPosition(line, character int) Position {
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the start of the document (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Character == 0
}

// RevisionID uniquely identifies a buffer revision.
// Every content reset produces a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
