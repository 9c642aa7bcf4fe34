package buffer

import (
	"io"
	"strings"
	"sync"
)

// LineEnding specifies the line ending style found in the source text.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a read-mostly text document addressed by line/character
// positions and by character offsets.
// Line endings are normalized to LF on load; the original style is kept
// in LineEnding. All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	content    *content
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
	name       string
}

// NewBuffer creates a new empty buffer. An empty buffer has one empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		content:    newContent(""),
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.content = newContent(s)
	b.lineEnding = DetectLineEnding(s)
	return b
}

// NewBufferFromLines creates a buffer whose lines are exactly lines.
// Lines must not contain line breaks.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	return NewBufferFromString(strings.Join(lines, "\n"), opts...)
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first so CRLF pairs split across reads normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// Read Operations

// Text returns the full buffer content with LF line breaks.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.text()
}

// Len returns the total length of the buffer in characters,
// counting each line break as one character.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.length()
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.lineCount()
}

// LineText returns the text of a line without its line break.
func (b *Buffer) LineText(line int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.lineText(line)
}

// LineLength returns the length of a line in characters, without its line break.
func (b *Buffer) LineLength(line int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.lineLength(line)
}

// TextRange returns the text covered by r. Line breaks inside the range
// are returned as "\n".
func (b *Buffer) TextRange(r Range) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.textRange(r)
}

// Coordinate Conversion

// OffsetAt converts a position to a character offset.
func (b *Buffer) OffsetAt(pos Position) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.offsetAt(pos)
}

// PositionAt converts a character offset to a position.
// An offset that lands on a line break maps to the end of that line.
func (b *Buffer) PositionAt(offset int) (Position, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.positionAt(offset)
}

// ValidatePosition reports whether pos addresses a character slot in the buffer.
func (b *Buffer) ValidatePosition(pos Position) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.checkPosition(pos)
}

// Write Operations

// Reset replaces the whole content, for example after the backing file
// changed on disk. Positions taken before Reset may no longer be valid.
func (b *Buffer) Reset(text string) {
	c := newContent(text)
	le := DetectLineEnding(text)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = c
	b.lineEnding = le
	b.revisionID = NewRevisionID()
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer holds no characters.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.length() == 0
}

// LineEnding returns the line ending style detected in the source text.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// Name returns the buffer's display name.
func (b *Buffer) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{content: b.content} // content is immutable, safe to share
}
