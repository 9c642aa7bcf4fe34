package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/wsjump/internal/input"
)

// Step is one batch motion, repeated Count times.
type Step struct {
	Action string
	Count  int
}

// String returns the step in -do syntax.
func (s Step) String() string {
	name := "next"
	if s.Action == input.ActionPreviousWhitespace {
		name = "prev"
	}
	if s.Count > 1 {
		return fmt.Sprintf("%s*%d", name, s.Count)
	}
	return name
}

// stepNames maps -do words to actions.
var stepNames = map[string]string{
	"next":     input.ActionNextWhitespace,
	"n":        input.ActionNextWhitespace,
	"prev":     input.ActionPreviousWhitespace,
	"previous": input.ActionPreviousWhitespace,
	"p":        input.ActionPreviousWhitespace,
}

// ParseSteps parses a comma-separated motion list such as "next,prev*3".
func ParseSteps(spec string) ([]Step, error) {
	var steps []Step
	for part := range strings.SplitSeq(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		word, countText, hasCount := strings.Cut(part, "*")
		action, ok := stepNames[strings.ToLower(strings.TrimSpace(word))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown motion %q", ErrInvalidStep, word)
		}

		count := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(countText))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad repeat count in %q", ErrInvalidStep, part)
			}
			count = n
		}
		steps = append(steps, Step{Action: action, Count: count})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no motions in %q", ErrInvalidStep, spec)
	}
	return steps, nil
}
