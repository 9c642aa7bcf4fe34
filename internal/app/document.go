package app

import (
	"io"
	"os"

	"github.com/dshills/wsjump/internal/engine/buffer"
)

// StdinPath names standard input on the command line.
const StdinPath = "-"

// OpenDocument reads the document at path, or from stdin when path is "-".
// Line endings are normalized to LF.
func OpenDocument(path string, stdin io.Reader) (*buffer.Buffer, error) {
	if path == StdinPath {
		buf, err := buffer.NewBufferFromReader(stdin)
		if err != nil {
			return nil, NewOperationError("read", "stdin", err)
		}
		return buf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	defer f.Close()

	buf, err := buffer.NewBufferFromReader(f)
	if err != nil {
		return nil, NewOperationError("read", path, err)
	}
	return buf, nil
}

// DisplayName returns the name shown for path.
func DisplayName(path string) string {
	if path == StdinPath {
		return "[stdin]"
	}
	return path
}
