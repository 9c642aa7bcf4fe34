// Package buffer provides a thread-safe, line-indexed text document.
// It serves as the document side of the motion host: line lengths,
// conversion between character offsets and line/character positions,
// and substring extraction by range.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("foo   bar\nbaz")
//
//	n, _ := buf.LineLength(0)                          // 9
//	off, _ := buf.OffsetAt(buffer.NewPosition(1, 0))   // 10
//	pos, _ := buf.PositionAt(9)                        // (0:9)
//	s, _ := buf.TextRange(buffer.LineRange(0, 3, 6))  // "   "
//
// Coordinates:
//
//   - Position: line and character, both 0-indexed; characters are
//     Unicode code points
//   - Offset: characters from the start of the document, where each line
//     break counts as one character
//
// CRLF and CR line endings are normalized to LF on load, so offsets do not
// depend on the platform the file came from. The detected style is kept and
// reported by LineEnding.
//
// Errors:
//
// Out-of-range lines, positions and offsets return errors wrapping
// ErrLineOutOfRange, ErrPositionOutOfRange and ErrOffsetOutOfRange.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Use Snapshot to obtain a consistent
// read-only view across several reads.
package buffer
