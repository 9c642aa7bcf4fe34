package buffer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// content is an immutable line index over normalized (LF) text.
// Offsets count characters, and each line break counts as one character.
type content struct {
	lines  []string
	starts []int // character offset of each line start
	lens   []int // character length of each line, without the break
}

func newContent(text string) *content {
	lines := strings.Split(NormalizeLineEndings(text), "\n")
	c := &content{
		lines:  lines,
		starts: make([]int, len(lines)),
		lens:   make([]int, len(lines)),
	}

	offset := 0
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		c.starts[i] = offset
		c.lens[i] = n
		offset += n + 1
	}
	return c
}

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (c *content) lineCount() int {
	return len(c.lines)
}

func (c *content) length() int {
	last := len(c.lines) - 1
	return c.starts[last] + c.lens[last]
}

func (c *content) text() string {
	return strings.Join(c.lines, "\n")
}

func (c *content) checkLine(line int) error {
	if line < 0 || line >= len(c.lines) {
		return fmt.Errorf("%w: line %d, document has %d lines", ErrLineOutOfRange, line, len(c.lines))
	}
	return nil
}

func (c *content) checkPosition(pos Position) error {
	if err := c.checkLine(pos.Line); err != nil {
		return err
	}
	if pos.Character < 0 || pos.Character > c.lens[pos.Line] {
		return fmt.Errorf("%w: %s, line %d has %d characters",
			ErrPositionOutOfRange, pos, pos.Line, c.lens[pos.Line])
	}
	return nil
}

func (c *content) lineLength(line int) (int, error) {
	if err := c.checkLine(line); err != nil {
		return 0, err
	}
	return c.lens[line], nil
}

func (c *content) lineText(line int) (string, error) {
	if err := c.checkLine(line); err != nil {
		return "", err
	}
	return c.lines[line], nil
}

func (c *content) offsetAt(pos Position) (int, error) {
	if err := c.checkPosition(pos); err != nil {
		return 0, err
	}
	return c.starts[pos.Line] + pos.Character, nil
}

func (c *content) positionAt(offset int) (Position, error) {
	if offset < 0 || offset > c.length() {
		return Position{}, fmt.Errorf("%w: %d, document has %d characters",
			ErrOffsetOutOfRange, offset, c.length())
	}

	// Last line whose start is at or before offset.
	line := sort.Search(len(c.starts), func(i int) bool {
		return c.starts[i] > offset
	}) - 1

	return Position{Line: line, Character: offset - c.starts[line]}, nil
}

func (c *content) textRange(r Range) (string, error) {
	if err := c.checkPosition(r.Start); err != nil {
		return "", err
	}
	if err := c.checkPosition(r.End); err != nil {
		return "", err
	}
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrRangeInvalid, r)
	}

	if r.IsSingleLine() {
		return sliceRunes(c.lines[r.Start.Line], r.Start.Character, r.End.Character), nil
	}

	var sb strings.Builder
	first := c.lines[r.Start.Line]
	sb.WriteString(sliceRunes(first, r.Start.Character, c.lens[r.Start.Line]))
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(c.lines[line])
	}
	sb.WriteByte('\n')
	sb.WriteString(sliceRunes(c.lines[r.End.Line], 0, r.End.Character))
	return sb.String(), nil
}

// sliceRunes returns the characters [from, to) of s.
// Callers guarantee 0 <= from <= to <= rune count of s.
func sliceRunes(s string, from, to int) string {
	start, end := len(s), len(s)
	i := 0
	for b := range s {
		if i == from {
			start = b
		}
		if i == to {
			end = b
			break
		}
		i++
	}
	return s[start:end]
}
