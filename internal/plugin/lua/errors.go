package lua

import (
	"errors"
	"fmt"
)

// Errors for script execution.
var (
	// ErrScript matches every error produced by a failing script.
	ErrScript = errors.New("lua script failed")

	// ErrRuntimeClosed is returned when running a script on a closed runtime.
	ErrRuntimeClosed = errors.New("lua runtime is closed")

	// ErrExecutionTimeout is returned when a script exceeds its time budget.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// ScriptError describes a script that failed to load or run.
type ScriptError struct {
	// Script is the chunk name, usually the file path.
	Script string
	// Message is the Lua error message.
	Message string
	// Err is the Go error behind the failure, if any.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %s", e.Script, e.Message)
}

// Unwrap returns ErrScript and the underlying cause.
func (e *ScriptError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrScript}
	}
	return []error{ErrScript, e.Err}
}
