// Package cursor provides the cursor namespace handler for the dispatcher.
//
// WhitespaceHandler implements the whitespace-boundary motions:
//   - cursor.nextWhitespace: move just past the next whitespace run on the
//     line, to the next line from the end of a line
//   - cursor.previousWhitespace: move just before the previous whitespace
//     run on the line, to the previous line from the start of a line
//
// Both repeat [count] times and stop early at a document boundary. A motion
// that cannot move at all returns a no-op result carrying the boundary
// notice; the host has already been notified by then.
//
// # Usage
//
//	d.RegisterNamespace(cursor.NewWhitespaceHandler(motion.New()))
//
//	result := d.Dispatch(input.Action{
//	    Name:  input.ActionNextWhitespace,
//	    Count: 3,
//	})
package cursor
