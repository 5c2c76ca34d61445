// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for input events. Events are
// immutable values handed to every widget of a tree.
type Event interface {
	ImplementsEvent()
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	// Ignored means the event was not consumed.
	Ignored Status = iota
	// Captured means the event was consumed. It absorbs Ignored when
	// statuses are merged.
	Captured
)

// Merge combines two statuses. The result is Captured if either is.
// Merge is associative and commutative.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

// Merge folds statuses, starting from Ignored.
func Merge(statuses ...Status) Status {
	res := Ignored
	for _, s := range statuses {
		res = res.Merge(s)
	}
	return res
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("unknown Status")
	}
}
