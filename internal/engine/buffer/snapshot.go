package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and does not change when the original
// buffer is reset.
type Snapshot struct {
	content *content
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.content.lineCount()
}

// LineLength returns the length of a line in characters.
func (s *Snapshot) LineLength(line int) (int, error) {
	return s.content.lineLength(line)
}

// TextRange returns the text covered by r.
func (s *Snapshot) TextRange(r Range) (string, error) {
	return s.content.textRange(r)
}

// OffsetAt converts a position to a character offset.
func (s *Snapshot) OffsetAt(pos Position) (int, error) {
	return s.content.offsetAt(pos)
}

// PositionAt converts a character offset to a position.
func (s *Snapshot) PositionAt(offset int) (Position, error) {
	return s.content.positionAt(offset)
}
