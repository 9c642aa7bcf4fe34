// Package backend draws a document on a terminal and turns terminal input
// into key presses.
//
// Terminal wraps a tcell.Screen. View renders a motion.Document with the
// cursor and a one-line status bar carrying the last notice, scrolling so
// the cursor stays visible. Cell widths come from uniseg, so wide and
// combining characters line up with the cursor.
//
// For tests, wrap a tcell simulation screen:
//
//	screen := tcell.NewSimulationScreen("UTF-8")
//	term := backend.NewTerminalWithScreen(screen)
//	term.Init()
//	view := backend.NewView(term)
package backend
