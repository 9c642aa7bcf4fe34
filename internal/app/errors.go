// Package app wires the document, the motion engine, the dispatcher and
// the front ends (batch, script and terminal) together.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the interactive loop should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrInvalidStep indicates a malformed batch motion.
	ErrInvalidStep = errors.New("invalid motion step")

	// ErrAlreadyRunning indicates the interactive loop is already running.
	ErrAlreadyRunning = errors.New("application already running")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name, e.g. "open", "load config", "run script"
	Target string // Target of the operation, e.g. a file path
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
