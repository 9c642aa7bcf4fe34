package backend

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/motion"
)

// DefaultTabWidth is the number of cells between tab stops.
const DefaultTabWidth = 4

// Default styles.
var (
	DefaultTextStyle   = tcell.StyleDefault
	DefaultStatusStyle = tcell.StyleDefault.Reverse(true)
)

// View renders a document and a status bar on a terminal.
// The last row is the status bar; the rows above show text.
type View struct {
	term *Terminal

	tabWidth    int
	textStyle   tcell.Style
	statusStyle tcell.Style

	name   string
	notice string

	// First visible line and first visible display column.
	top, left int
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithTabWidth sets the distance between tab stops.
func WithTabWidth(n int) ViewOption {
	return func(v *View) {
		if n > 0 {
			v.tabWidth = n
		}
	}
}

// WithStyles sets the text and status bar styles.
func WithStyles(text, status tcell.Style) ViewOption {
	return func(v *View) {
		v.textStyle = text
		v.statusStyle = status
	}
}

// NewView creates a view drawing on term.
func NewView(term *Terminal, opts ...ViewOption) *View {
	v := &View{
		term:        term,
		tabWidth:    DefaultTabWidth,
		textStyle:   DefaultTextStyle,
		statusStyle: DefaultStatusStyle,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetName sets the document name shown in the status bar.
func (v *View) SetName(name string) {
	v.name = name
}

// SetNotice sets the message shown on the right of the status bar.
func (v *View) SetNotice(msg string) {
	v.notice = msg
}

// Notice returns the current status bar message.
func (v *View) Notice() string {
	return v.notice
}

// Scroll returns the first visible line and display column.
func (v *View) Scroll() (top, left int) {
	return v.top, v.left
}

// Render draws doc with the cursor at pos and flushes the screen.
func (v *View) Render(doc motion.Document, pos buffer.Position) error {
	width, height := v.term.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := max(height-1, 0)

	cursorText, err := lineText(doc, pos.Line)
	if err != nil {
		return fmt.Errorf("rendering cursor line: %w", err)
	}
	col := v.columnOf(cursorText, pos.Character)
	v.scrollTo(pos.Line, col, rows, width)

	v.term.Clear()
	for row := 0; row < rows; row++ {
		line := v.top + row
		if line >= doc.LineCount() {
			break
		}
		text, err := lineText(doc, line)
		if err != nil {
			return fmt.Errorf("rendering line %d: %w", line, err)
		}
		v.drawLine(row, width, text)
	}
	v.drawStatus(height-1, width, pos)

	if rows > 0 {
		v.term.ShowCursor(col-v.left, pos.Line-v.top)
	} else {
		v.term.HideCursor()
	}
	v.term.Show()
	return nil
}

// scrollTo adjusts top and left so that (line, col) is visible.
func (v *View) scrollTo(line, col, rows, width int) {
	if line < v.top {
		v.top = line
	}
	if rows > 0 && line >= v.top+rows {
		v.top = line - rows + 1
	}
	v.top = max(v.top, 0)

	if col < v.left {
		v.left = col
	}
	if col >= v.left+width {
		v.left = col - width + 1
	}
	v.left = max(v.left, 0)
}

// drawLine draws text on row, shifted by the horizontal scroll.
func (v *View) drawLine(row, width int, text string) {
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := v.cellWidth(cluster, col)
		x := col - v.left
		col += w

		if x < 0 {
			continue
		}
		if x+w > width {
			return
		}
		if cluster == "\t" {
			for i := 0; i < w; i++ {
				v.term.SetContent(x+i, row, ' ', nil, v.textStyle)
			}
			continue
		}
		runes := g.Runes()
		if unicode.IsControl(runes[0]) {
			v.term.SetContent(x, row, '?', nil, v.textStyle)
			continue
		}
		v.term.SetContent(x, row, runes[0], runes[1:], v.textStyle)
	}
}

// drawStatus draws the name and cursor on the left and the notice on the right.
func (v *View) drawStatus(row, width int, pos buffer.Position) {
	for x := 0; x < width; x++ {
		v.term.SetContent(x, row, ' ', nil, v.statusStyle)
	}

	left := fmt.Sprintf(" %s %d:%d", v.name, pos.Line, pos.Character)
	if v.name == "" {
		left = fmt.Sprintf(" %d:%d", pos.Line, pos.Character)
	}
	end := v.drawText(0, row, width, left)

	if v.notice == "" {
		return
	}
	right := v.notice + " "
	start := width - uniseg.StringWidth(right)
	if start <= end {
		start = end + 1
	}
	v.drawText(start, row, width, right)
}

// drawText draws s from x and returns the column after the last cell drawn.
func (v *View) drawText(x, row, width int, s string) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := max(uniseg.StringWidth(g.Str()), 1)
		if x+w > width {
			break
		}
		runes := g.Runes()
		v.term.SetContent(x, row, runes[0], runes[1:], v.statusStyle)
		x += w
	}
	return x
}

// columnOf returns the display column of the character at char in text.
func (v *View) columnOf(text string, char int) int {
	col, n := 0, 0
	g := uniseg.NewGraphemes(text)
	for n < char && g.Next() {
		col += v.cellWidth(g.Str(), col)
		n += utf8.RuneCountInString(g.Str())
	}
	return col
}

// cellWidth returns the cells a grapheme cluster occupies at column col.
func (v *View) cellWidth(cluster string, col int) int {
	if cluster == "\t" {
		return v.tabWidth - col%v.tabWidth
	}
	return max(uniseg.StringWidth(cluster), 1)
}

func lineText(doc motion.Document, line int) (string, error) {
	if doc.LineCount() == 0 {
		return "", nil
	}
	n, err := doc.LineLength(line)
	if err != nil {
		return "", err
	}
	return doc.TextRange(buffer.LineRange(line, 0, n))
}
