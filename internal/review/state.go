package review

import "fmt"

// State identifies where the session sits in the review loop.
type State string

const (
	// StateReviewing walks pending events one at a time.
	StateReviewing State = "reviewing"
	// StateBatchSelecting builds an index selection for a uniform action.
	StateBatchSelecting State = "batch_selecting"
	// StateDone ends the session; terminal.
	StateDone State = "done"
)

type stateTransition struct {
	from State
	to   State
}

var allowedTransitions = []stateTransition{
	{from: StateReviewing, to: StateBatchSelecting},
	{from: StateReviewing, to: StateDone},
	{from: StateBatchSelecting, to: StateReviewing},
	{from: StateBatchSelecting, to: StateDone},
}

func canTransition(from, to State) bool {
	for _, tr := range allowedTransitions {
		if tr.from == from && tr.to == to {
			return true
		}
	}
	return false
}

func (s *Session) transition(to State) error {
	if !canTransition(s.state, to) {
		return fmt.Errorf("invalid review transition %s -> %s", s.state, to)
	}
	s.state = to
	return nil
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}
