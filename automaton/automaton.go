// Package automaton implements the two-action Tsetlin automaton
package automaton

import "errors"
import "math"

// ErrStates is returned when an automaton is asked to have no states per action.
var ErrStates = errors.New("automaton needs 1 to math.MaxInt32 states per action")

// DefaultStates is the number of states per action used when none is configured.
const DefaultStates = 100

// Action is the decision an automaton currently takes about its literal.
type Action byte

const (
	// Exclude leaves the literal out of the clause
	Exclude Action = iota
	// Include puts the literal into the clause
	Include
)

func (a Action) String() string {
	if a == Include {
		return "include"
	}
	return "exclude"
}

// Source is a stream of uniform reals in [0, 1).
type Source interface {
	Float64() float64
}

// Automaton is a Tsetlin automaton. The sign of state encodes the action,
// the magnitude encodes how deep the automaton is in it.
type Automaton struct {
	state  int32
	states int32
}

// New creates an automaton in the deepest Exclude state.
func New(states int) (a Automaton, err error) {
	if states < 1 || states > math.MaxInt32 {
		return Automaton{}, ErrStates
	}
	a.states = int32(states)
	a.state = -a.states
	return
}

// MustNew creates an automaton like New, but panics on error
func MustNew(states int) Automaton {
	a, err := New(states)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Action reports Include when the state is positive, Exclude otherwise.
func (a Automaton) Action() Action {
	if a.state > 0 {
		return Include
	}
	return Exclude
}

// State gets the signed state counter
func (a Automaton) State() int32 {
	return a.state
}

// States gets the number of states per action
func (a Automaton) States() int32 {
	return a.states
}

// Reward moves one step deeper into the current action, saturating at the boundary.
func (a *Automaton) Reward() {
	if a.state > 0 {
		if a.state < a.states {
			a.state++
		}
	} else if a.state > -a.states {
		a.state--
	}
}

// Penalize moves one step towards the opposite action. A state of 0 still
// means Exclude, so leaving the shallowest Exclude state takes two steps.
func (a *Automaton) Penalize() {
	if a.state > 0 {
		a.state--
	} else {
		a.state++
	}
}

// UpdateWithProbability draws one number from rng and, when it is below
// probability, rewards (reward == true) or penalizes the automaton.
func (a *Automaton) UpdateWithProbability(reward bool, probability float64, rng Source) {
	if rng.Float64() < probability {
		if reward {
			a.Reward()
		} else {
			a.Penalize()
		}
	}
}
