package buffer

import "fmt"

// Range is a span between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from start and end positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// LineRange creates a single-line range covering characters [from, to).
func LineRange(line, from, to int) Range {
	return Range{
		Start: Position{Line: line, Character: from},
		End:   Position{Line: line, Character: to},
	}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	if r.IsValid() {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}
