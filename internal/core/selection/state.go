// Package selection keeps the list and the map in agreement about which
// location is selected.
//
// A Controller owns the only mutable piece, State. Views send it intent
// events and get back an Instruction describing how both views must look.
// The controller is not safe for concurrent use; the host event loop
// serializes events.
package selection

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex reports an index outside [0, N). It is a caller bug, not a
// recoverable condition.
var ErrInvalidIndex = errors.New("invalid location index")

// State holds at most one selected index for a store of fixed size.
type State struct {
	size     int
	index    int
	selected bool
}

// NewState returns an empty selection over size records.
func NewState(size int) *State {
	return &State{size: size}
}

// Get returns the selected index and whether anything is selected.
func (s *State) Get() (int, bool) {
	return s.index, s.selected
}

// Set selects index.
func (s *State) Set(index int) error {
	if index < 0 || index >= s.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, s.size)
	}
	s.index = index
	s.selected = true
	return nil
}

// Clear drops the selection.
func (s *State) Clear() {
	s.index = 0
	s.selected = false
}
