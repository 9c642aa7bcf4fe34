package app

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/engine/cursor"
)

// Session is one open document with its selection. It implements
// motion.Host, so the engine, the dispatcher and scripts all operate on it.
type Session struct {
	id     string
	name   string
	buf    *buffer.Buffer
	logger *Logger

	mu       sync.RWMutex
	sel      cursor.Selection
	notice   string
	onNotify func(string)
}

// NewSession creates a session over buf with the cursor at the start.
// name is shown to the user, usually the file path.
func NewSession(buf *buffer.Buffer, name string, logger *Logger) *Session {
	if logger == nil {
		logger = NullLogger()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		name:   name,
		buf:    buf,
		logger: logger.WithComponent("session").WithField("session", id),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Name returns the document name.
func (s *Session) Name() string {
	return s.name
}

// Buffer returns the underlying document.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Snapshot returns a consistent read-only view of the document.
func (s *Session) Snapshot() *buffer.Snapshot {
	return s.buf.Snapshot()
}

// Reload replaces the document text, for example after the file changed on
// disk, and reports whether the text differed. Selection ends that no longer
// exist are pulled back to the nearest position in the new text.
func (s *Session) Reload(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf.Text() == buffer.NormalizeLineEndings(text) {
		return false
	}
	s.buf.Reset(text)
	s.sel = cursor.NewSelection(s.clamp(s.sel.Anchor), s.clamp(s.sel.Head))
	s.logger.Debug("reloaded revision %d, %d lines, selection %s",
		s.buf.RevisionID(), s.buf.LineCount(), s.sel)
	return true
}

func (s *Session) clamp(pos buffer.Position) buffer.Position {
	if s.buf.ValidatePosition(pos) == nil {
		return pos
	}
	pos.Line = min(max(pos.Line, 0), s.buf.LineCount()-1)
	n, _ := s.buf.LineLength(pos.Line)
	pos.Character = min(max(pos.Character, 0), n)
	return pos
}

// LineLength implements motion.Document.
func (s *Session) LineLength(line int) (int, error) {
	return s.buf.LineLength(line)
}

// LineCount implements motion.Document.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// OffsetAt implements motion.Document.
func (s *Session) OffsetAt(pos buffer.Position) (int, error) {
	return s.buf.OffsetAt(pos)
}

// PositionAt implements motion.Document.
func (s *Session) PositionAt(offset int) (buffer.Position, error) {
	return s.buf.PositionAt(offset)
}

// TextRange implements motion.Document.
func (s *Session) TextRange(r buffer.Range) (string, error) {
	return s.buf.TextRange(r)
}

// Selection returns the current selection.
func (s *Session) Selection() cursor.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

// Select replaces the selection. Both ends must lie in the document.
func (s *Session) Select(anchor, head buffer.Position) error {
	for _, p := range []buffer.Position{anchor, head} {
		if err := s.buf.ValidatePosition(p); err != nil {
			return fmt.Errorf("selecting %s: %w", p, err)
		}
	}
	s.mu.Lock()
	s.sel = cursor.NewSelection(anchor, head)
	s.mu.Unlock()
	return nil
}

// Cursor returns the start of the selection.
func (s *Session) Cursor() (buffer.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.Cursor(), nil
}

// SetCursor collapses the selection to pos.
func (s *Session) SetCursor(pos buffer.Position) error {
	if err := s.buf.ValidatePosition(pos); err != nil {
		return err
	}
	s.mu.Lock()
	s.sel = s.sel.MoveTo(pos)
	s.mu.Unlock()

	s.logger.Debug("cursor %s", pos)
	return nil
}

// Notify records msg as the last notice and forwards it to the listener.
func (s *Session) Notify(msg string) {
	s.mu.Lock()
	s.notice = msg
	fn := s.onNotify
	s.mu.Unlock()

	s.logger.Debug("notice %q", msg)
	if fn != nil {
		fn(msg)
	}
}

// Notice returns the last notice.
func (s *Session) Notice() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notice
}

// ClearNotice forgets the last notice.
func (s *Session) ClearNotice() {
	s.mu.Lock()
	s.notice = ""
	s.mu.Unlock()
}

// OnNotify sets the function called for every notice.
func (s *Session) OnNotify(fn func(string)) {
	s.mu.Lock()
	s.onNotify = fn
	s.mu.Unlock()
}
