package input

// Action names handled by this editor.
const (
	ActionNextWhitespace     = "cursor.nextWhitespace"
	ActionPreviousWhitespace = "cursor.previousWhitespace"
	ActionQuit               = "app.quit"
)

// ArgDryRun asks the handler to compute the result without applying it.
const ArgDryRun = "dryRun"

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceScript indicates the action originated from a Lua script.
	SourceScript
	// SourceCommandLine indicates the action originated from the -do flag.
	SourceCommandLine
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceScript:
		return "script"
	case SourceCommandLine:
		return "command-line"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Extra holds additional key-value pairs for extensibility.
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetBool retrieves a boolean value from Extra. Missing or non-boolean
// values read as false.
func (a ActionArgs) GetBool(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "cursor.nextWhitespace").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count. Zero and negative values mean once.
	Count int
}

// NewAction creates an action that runs once.
func NewAction(name string, source ActionSource) Action {
	return Action{Name: name, Source: source, Count: 1}
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithArg returns a copy of the action with an extra argument set.
func (a Action) WithArg(key string, value any) Action {
	extra := make(map[string]any, len(a.Args.Extra)+1)
	for k, v := range a.Args.Extra {
		extra[k] = v
	}
	extra[key] = value
	a.Args.Extra = extra
	return a
}

// Repeat returns the effective repeat count, at least 1.
func (a Action) Repeat() int {
	if a.Count <= 0 {
		return 1
	}
	return a.Count
}

// Namespace returns the action prefix before the first dot.
func (a Action) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}
	return ""
}
