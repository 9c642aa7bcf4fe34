// Package cursor provides the selection value used as the motion cursor.
//
// Selections use an anchor/head model where:
//   - Anchor: the position where the selection started
//   - Head: the position it was extended to
//
// When Anchor == Head, the selection is just a cursor. Motion commands read
// their reference point from Cursor, which is the start of the selection,
// and write back a collapsed selection via MoveTo.
//
//	sel := cursor.NewSelection(buffer.NewPosition(0, 8), buffer.NewPosition(0, 2))
//	sel.Cursor()                                // (0:2)
//	sel = sel.MoveTo(buffer.NewPosition(0, 6))  // Cursor(0:6)
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
