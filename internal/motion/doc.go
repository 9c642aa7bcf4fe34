// Package motion implements the whitespace-boundary cursor motions.
//
// Two commands share one engine, parameterized by Direction:
//
//   - Forward (MoveToNextWhitespaceBoundary): land just after the next
//     whitespace run on the current line
//   - Backward (MoveToPreviousWhitespaceBoundary): land just before the
//     previous whitespace run on the current line
//
// # Boundary policy
//
// Forward motion at the end of the document is a no-op with a notice; at
// the end of any other line it moves to the start of the next line; with no
// whitespace left on the line it moves to the end of the line.
//
// Backward motion mirrors this: a no-op with a notice at the start of the
// document, the end of the previous line from the start of a line, and
// the start of the line when no whitespace precedes the cursor.
//
// # Search
//
// Searches never cross a line break. The forward search scans the text from
// the cursor to the end of the line. The backward search reverses the text
// from the start of the line to the cursor and runs the same forward scan on
// it, so both directions share one primitive and the landing offset is the
// cursor offset minus the distance to the far side of the run.
//
// # Host
//
// The engine reads the document and cursor through Host and writes back a
// single cursor position. It keeps no state between calls; Target computes
// a landing position without touching the host at all.
package motion
