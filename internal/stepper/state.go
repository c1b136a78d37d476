package stepper

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is returned when a constructor receives input it cannot
// build a usable value from.
var ErrInvalidArgument = errors.New("invalid argument")

// State is an ordered, immutable list of step labels plus the index of the
// selected step. The selected index is always within [0, Len()-1].
//
// State is not safe for concurrent use. It is meant to be owned by a single
// UI loop.
type State struct {
	steps     []string
	selected  int
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(int)
}

// New creates a State with the first step selected. It fails when steps is
// empty.
func New(steps []string) (*State, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: steps must not be empty", ErrInvalidArgument)
	}
	own := make([]string, len(steps))
	copy(own, steps)
	return &State{steps: own}, nil
}

// Len returns the number of steps.
func (s *State) Len() int {
	return len(s.steps)
}

// Step returns the label at index i. It panics if i is out of range, like a
// slice access.
func (s *State) Step(i int) string {
	return s.steps[i]
}

// Steps returns a copy of the step labels.
func (s *State) Steps() []string {
	out := make([]string, len(s.steps))
	copy(out, s.steps)
	return out
}

// Selected returns the selected index.
func (s *State) Selected() int {
	return s.selected
}

// SetSelected assigns the selected index, clamping i into [0, Len()-1].
func (s *State) SetSelected(i int) {
	last := len(s.steps) - 1
	switch {
	case i < 0:
		i = 0
	case i > last:
		i = last
	}
	s.assign(i)
}

// Next moves the selection forward, wrapping from the last step to the first.
func (s *State) Next() {
	if s.selected != len(s.steps)-1 {
		s.assign(s.selected + 1)
		return
	}
	s.assign(0)
}

// Previous moves the selection back, wrapping from the first step to the last.
func (s *State) Previous() {
	if s.selected != 0 {
		s.assign(s.selected - 1)
		return
	}
	s.assign(len(s.steps) - 1)
}

// Subscribe registers fn to be called with the new index every time the
// selection changes. Observers run in subscription order. Assignments that
// leave the index unchanged do not notify. The returned function removes the
// subscription. Subscriptions added or removed from inside an observer take
// effect from the next change.
func (s *State) Subscribe(fn func(index int)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(slices.Clone(s.observers), func(o observer) bool {
			return o.id == id
		})
	}
}

func (s *State) assign(i int) {
	if i == s.selected {
		return
	}
	s.selected = i
	// The slice is never modified in place, so this ranges over a snapshot.
	for _, o := range s.observers {
		o.fn(i)
	}
}
