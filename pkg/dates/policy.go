package dates

import (
	"fmt"

	"github.com/TwirlySeal/duit/pkg/terrors"
)

// Window tells which kind of event opened the expression being merged.
type Window int

const (
	WindowClosed Window = iota
	WindowDate
	WindowDateTime
)

type Event int

const (
	EventDate Event = iota
	EventTime
)

// MergeState is what a FlushPolicy gets to see of the open expression.
type MergeState struct {
	Window Window
	// DateSet is false while the date is only the default of a time-opened window.
	DateSet bool
	TimeSet bool
}

// FlushPolicy reports whether ev closes the open expression before it is applied.
// It is only consulted while a window is open.
type FlushPolicy func(st MergeState, ev Event) bool

// ObservedFlush flushes a date-opened window on a date and a time-opened
// window on a time. The window keeps the kind it was opened with, so
// "friday 6pm 7pm" stays one expression and "6pm friday" merges into one too.
func ObservedFlush(st MergeState, ev Event) bool {
	switch ev {
	case EventDate:
		return st.Window == WindowDate
	case EventTime:
		return st.Window == WindowDateTime
	}
	return false
}

// StrictFlush flushes whenever the event would overwrite a field
// the open expression already got from the text.
func StrictFlush(st MergeState, ev Event) bool {
	switch ev {
	case EventDate:
		return st.DateSet
	case EventTime:
		return st.TimeSet
	}
	return false
}

var policies = map[string]FlushPolicy{
	"observed": ObservedFlush,
	"strict":   StrictFlush,
}

// PolicyByName resolves the names accepted by the parser.flush config key.
func PolicyByName(name string) (FlushPolicy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %w: unknown flush policy '%s'", terrors.ErrValue, terrors.ErrNotFound, name)
	}
	return p, nil
}
