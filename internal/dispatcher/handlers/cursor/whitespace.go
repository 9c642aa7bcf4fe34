package cursor

import (
	"github.com/dshills/wsjump/internal/dispatcher/execctx"
	"github.com/dshills/wsjump/internal/dispatcher/handler"
	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
)

// Keys of the data attached to whitespace motion results.
const (
	DataLine      = "line"
	DataCharacter = "character"
	DataMoves     = "moves"
)

// WhitespaceHandler handles the whitespace-boundary cursor motions.
type WhitespaceHandler struct {
	engine *motion.Engine
}

// NewWhitespaceHandler creates a handler driving the given engine.
// A nil engine gets the default one.
func NewWhitespaceHandler(engine *motion.Engine) *WhitespaceHandler {
	if engine == nil {
		engine = motion.New()
	}
	return &WhitespaceHandler{engine: engine}
}

// Namespace returns the cursor namespace.
func (h *WhitespaceHandler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *WhitespaceHandler) CanHandle(actionName string) bool {
	switch actionName {
	case input.ActionNextWhitespace, input.ActionPreviousWhitespace:
		return true
	}
	return false
}

// HandleAction processes a whitespace motion.
func (h *WhitespaceHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	var dir motion.Direction
	switch action.Name {
	case input.ActionNextWhitespace:
		dir = motion.Forward
	case input.ActionPreviousWhitespace:
		dir = motion.Backward
	default:
		return handler.Errorf("unknown cursor action: %s", action.Name)
	}

	if ctx.DryRun {
		return h.preview(ctx, dir)
	}
	return h.move(ctx, dir)
}

// move applies the motion up to count times.
func (h *WhitespaceHandler) move(ctx *execctx.ExecutionContext, dir motion.Direction) handler.Result {
	var (
		last  motion.Outcome
		moves int
	)
	for i := 0; i < ctx.GetCount(); i++ {
		out, err := h.engine.Move(ctx.Host, dir)
		if err != nil {
			return handler.Error(err)
		}
		last = out
		if !out.Moved() {
			break
		}
		moves++
	}
	return h.result(last, moves)
}

// preview computes the landing position without moving the cursor.
func (h *WhitespaceHandler) preview(ctx *execctx.ExecutionContext, dir motion.Direction) handler.Result {
	pos, err := ctx.Host.Cursor()
	if err != nil {
		return handler.Error(err)
	}

	var (
		last  motion.Outcome
		moves int
	)
	for i := 0; i < ctx.GetCount(); i++ {
		out, err := h.engine.Target(ctx.Host, pos, dir)
		if err != nil {
			return handler.Error(err)
		}
		last = out
		if !out.Moved() {
			break
		}
		pos = out.To
		moves++
	}
	return h.result(last, moves)
}

func (h *WhitespaceHandler) result(last motion.Outcome, moves int) handler.Result {
	var res handler.Result
	switch {
	case moves == 0:
		res = handler.NoOpWithMessage(last.Notice)
	case !last.Moved():
		// Moved, then stopped at a boundary.
		res = handler.SuccessWithMessage(last.Notice)
	default:
		res = handler.Success()
	}
	return withPosition(res, last.To).WithData(DataMoves, moves)
}

func withPosition(res handler.Result, pos buffer.Position) handler.Result {
	return res.WithData(DataLine, pos.Line).WithData(DataCharacter, pos.Character)
}
