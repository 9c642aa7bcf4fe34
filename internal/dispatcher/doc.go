// Package dispatcher routes input actions to handlers and coordinates execution.
//
// The dispatcher connects user input to editor functionality. It receives
// actions from the terminal loop, the command line and Lua scripts, and routes
// them to handlers by namespace prefix or exact name.
//
// # Routing
//
//  1. Namespace Router: actions are routed by the prefix before the first
//     dot, so "cursor.nextWhitespace" goes to the "cursor" namespace handler.
//  2. Handler Registry: exact action names map to handlers, highest priority
//     first. The registry is consulted when no namespace accepts the action.
//
// # Execution
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built with the motion host and the repeat count
//     (clamped to Config.MaxRepeatCount)
//  2. Pre-dispatch hooks run and may modify or cancel the action
//  3. The handler runs, with panics recovered into error results unless
//     Config.RecoverFromPanic is off
//  4. Post-dispatch hooks run
//  5. Metrics are recorded if enabled
//
// # Usage
//
//	d := dispatcher.NewWithDefaults()
//	d.SetHost(session, path)
//	d.RegisterNamespace(cursor.NewWhitespaceHandler(engine))
//	result := d.Dispatch(input.NewAction(input.ActionNextWhitespace, input.SourceKeyboard))
//	if result.IsNoOp() {
//		status(result.Message)
//	}
package dispatcher
