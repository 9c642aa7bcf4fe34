package motion

import (
	"errors"

	"github.com/dshills/wsjump/internal/engine/buffer"
)

// fakeHost is a Host over an in-memory buffer that records cursor writes
// and notices.
type fakeHost struct {
	*buffer.Buffer
	cursor    buffer.Position
	notices   []string
	sets      int
	cursorErr error
	setErr    error
}

func newFakeHost(lines []string, cursor buffer.Position) *fakeHost {
	return &fakeHost{
		Buffer: buffer.NewBufferFromLines(lines),
		cursor: cursor,
	}
}

func (h *fakeHost) Cursor() (buffer.Position, error) {
	if h.cursorErr != nil {
		return buffer.Position{}, h.cursorErr
	}
	return h.cursor, nil
}

func (h *fakeHost) SetCursor(pos buffer.Position) error {
	if h.setErr != nil {
		return h.setErr
	}
	h.sets++
	h.cursor = pos
	return nil
}

func (h *fakeHost) Notify(message string) {
	h.notices = append(h.notices, message)
}

var errHostGone = errors.New("host gone")

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.messages = append(l.messages, msg)
}
