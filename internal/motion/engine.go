package motion

import (
	"fmt"

	"github.com/dshills/wsjump/internal/engine/buffer"
)

// Default notices shown when a motion cannot move.
const (
	DefaultEndOfDocumentNotice   = "At EOF."
	DefaultStartOfDocumentNotice = "At start of file."
)

// Direction selects which way a motion searches.
type Direction uint8

const (
	// Forward moves toward the end of the document.
	Forward Direction = iota
	// Backward moves toward the start of the document.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Landing classifies how a motion picked its target.
type Landing uint8

const (
	// LandingNone means the cursor was at a document boundary and did not move.
	LandingNone Landing = iota
	// LandingAfterRun is the end of a whitespace run found ahead of the cursor.
	LandingAfterRun
	// LandingBeforeRun is the start of a whitespace run found behind the cursor.
	LandingBeforeRun
	// LandingLineEnd is the end of the line when no whitespace is ahead.
	LandingLineEnd
	// LandingLineStart is the start of the line when no whitespace is behind.
	LandingLineStart
	// LandingNextLine is the start of the next line.
	LandingNextLine
	// LandingPreviousLine is the end of the previous line.
	LandingPreviousLine
)

// String returns the landing name.
func (l Landing) String() string {
	switch l {
	case LandingNone:
		return "none"
	case LandingAfterRun:
		return "after-run"
	case LandingBeforeRun:
		return "before-run"
	case LandingLineEnd:
		return "line-end"
	case LandingLineStart:
		return "line-start"
	case LandingNextLine:
		return "next-line"
	case LandingPreviousLine:
		return "previous-line"
	default:
		return "unknown"
	}
}

// Outcome describes the result of a motion.
type Outcome struct {
	Direction Direction
	From      buffer.Position
	To        buffer.Position
	Landing   Landing
	// Notice is set when the motion was a no-op at a document boundary.
	Notice string
}

// Moved returns true if the motion produced a new cursor position.
func (o Outcome) Moved() bool {
	return o.Landing != LandingNone
}

// Logger receives debug traces of motion decisions.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Engine computes whitespace-boundary motions. It has no mutable state and
// is safe for concurrent use.
type Engine struct {
	endNotice   string
	startNotice string
	logger      Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotices overrides the boundary notices. Empty values keep the defaults.
func WithNotices(endOfDocument, startOfDocument string) Option {
	return func(e *Engine) {
		if endOfDocument != "" {
			e.endNotice = endOfDocument
		}
		if startOfDocument != "" {
			e.startNotice = startOfDocument
		}
	}
}

// WithLogger sets the logger for motion traces.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		endNotice:   DefaultEndOfDocumentNotice,
		startNotice: DefaultStartOfDocumentNotice,
		logger:      nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MoveToNextWhitespaceBoundary moves the host cursor forward.
func (e *Engine) MoveToNextWhitespaceBoundary(host Host) (Outcome, error) {
	return e.Move(host, Forward)
}

// MoveToPreviousWhitespaceBoundary moves the host cursor backward.
func (e *Engine) MoveToPreviousWhitespaceBoundary(host Host) (Outcome, error) {
	return e.Move(host, Backward)
}

// Move reads the host cursor, computes the motion and applies it.
// At a document boundary the cursor is left alone and the host is notified.
func (e *Engine) Move(host Host, dir Direction) (Outcome, error) {
	pos, err := host.Cursor()
	if err != nil {
		return Outcome{}, fmt.Errorf("reading cursor: %w", err)
	}

	out, err := e.Target(host, pos, dir)
	if err != nil {
		return Outcome{}, err
	}

	if !out.Moved() {
		host.Notify(out.Notice)
		return out, nil
	}

	if err := host.SetCursor(out.To); err != nil {
		return Outcome{}, fmt.Errorf("setting cursor to %s: %w", out.To, err)
	}
	return out, nil
}

// Target computes where a motion from pos lands without touching the cursor.
func (e *Engine) Target(doc Document, pos buffer.Position, dir Direction) (Outcome, error) {
	if dir != Forward && dir != Backward {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	// A stale cursor must surface as an error even where no text is read.
	lineLen, err := checkCursor(doc, pos)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s motion from %s: %w", dir, pos, err)
	}

	var out Outcome
	if dir == Forward {
		out, err = e.forward(doc, pos, lineLen)
	} else {
		out, err = e.backward(doc, pos)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("%s motion from %s: %w", dir, pos, err)
	}

	out.Direction = dir
	out.From = pos
	e.logger.Debug("motion %s %s -> %s (%s)", dir, out.From, out.To, out.Landing)
	return out, nil
}

// forward and backward expect a cursor that passed checkCursor.
func (e *Engine) forward(doc Document, pos buffer.Position, lineLen int) (Outcome, error) {
	eod, err := AtEndOfDocument(doc, pos)
	if err != nil {
		return Outcome{}, err
	}
	if eod {
		return Outcome{To: pos, Landing: LandingNone, Notice: e.endNotice}, nil
	}

	if pos.Character == lineLen {
		return Outcome{
			To:      buffer.Position{Line: pos.Line + 1, Character: 0},
			Landing: LandingNextLine,
		}, nil
	}

	rest, err := doc.TextRange(buffer.LineRange(pos.Line, pos.Character, lineLen))
	if err != nil {
		return Outcome{}, err
	}

	index, length, ok := FindRun([]rune(rest))
	if !ok {
		return Outcome{
			To:      buffer.Position{Line: pos.Line, Character: lineLen},
			Landing: LandingLineEnd,
		}, nil
	}

	to, err := offsetPosition(doc, pos, index+length)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{To: to, Landing: LandingAfterRun}, nil
}

func (e *Engine) backward(doc Document, pos buffer.Position) (Outcome, error) {
	if AtStartOfDocument(pos) {
		return Outcome{To: pos, Landing: LandingNone, Notice: e.startNotice}, nil
	}

	if AtStartOfLine(pos) {
		prevLen, err := doc.LineLength(pos.Line - 1)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			To:      buffer.Position{Line: pos.Line - 1, Character: prevLen},
			Landing: LandingPreviousLine,
		}, nil
	}

	before, err := doc.TextRange(buffer.LineRange(pos.Line, 0, pos.Character))
	if err != nil {
		return Outcome{}, err
	}

	index, length, ok := FindRun(reverseRunes([]rune(before)))
	if !ok {
		return Outcome{
			To:      buffer.Position{Line: pos.Line, Character: 0},
			Landing: LandingLineStart,
		}, nil
	}

	to, err := offsetPosition(doc, pos, -(index + length))
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{To: to, Landing: LandingBeforeRun}, nil
}

// offsetPosition returns the position delta characters away from pos.
func offsetPosition(doc Document, pos buffer.Position, delta int) (buffer.Position, error) {
	offset, err := doc.OffsetAt(pos)
	if err != nil {
		return buffer.Position{}, err
	}
	return doc.PositionAt(offset + delta)
}
