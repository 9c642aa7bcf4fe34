// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
)

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// Host gives handlers the document, the cursor and notifications.
	Host motion.Host

	// Source is where the dispatched action came from.
	Source input.ActionSource

	// FilePath names the document the host is showing.
	FilePath string

	// Execution options
	Count  int  // Repeat count (1 if not specified)
	DryRun bool // If true, compute targets without moving the cursor
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Count: 1}
}

// WithHost returns the context with the host set.
func (ctx *ExecutionContext) WithHost(host motion.Host) *ExecutionContext {
	ctx.Host = host
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// WithDryRun returns the context with dry run mode enabled.
func (ctx *ExecutionContext) WithDryRun(dryRun bool) *ExecutionContext {
	ctx.DryRun = dryRun
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Host == nil {
		return ErrMissingHost
	}
	return nil
}
