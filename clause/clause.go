// Package clause implements Tsetlin machine clauses and the clause bank which votes with them
package clause

import "github.com/neurlang/tsetlin/automaton"

// Clause is a conjunction over one feature vector. positive[i] decides whether
// the literal "feature i is true" is included, negative[i] whether "feature i is false" is.
type Clause struct {
	positive []automaton.Automaton
	negative []automaton.Automaton
}

// New creates a clause over features features with every literal excluded.
func New(features, states int) (c Clause, err error) {
	a, err := automaton.New(states)
	if err != nil {
		return Clause{}, err
	}
	c.positive = make([]automaton.Automaton, features)
	c.negative = make([]automaton.Automaton, features)
	for i := 0; i < features; i++ {
		c.positive[i] = a
		c.negative[i] = a
	}
	return
}

// Len gets the number of features the clause is defined over
func (c *Clause) Len() int {
	return len(c.positive)
}

// Positive gets the automaton governing the literal "feature i is true"
func (c *Clause) Positive(i int) *automaton.Automaton {
	return &c.positive[i]
}

// Negative gets the automaton governing the literal "feature i is false"
func (c *Clause) Negative(i int) *automaton.Automaton {
	return &c.negative[i]
}

// Evaluate reports whether every included literal holds for input. A clause
// with no included literal is true for any input.
func (c *Clause) Evaluate(input []bool) bool {
	for i := range c.positive {
		if input[i] {
			if c.negative[i].Action() == automaton.Include {
				return false
			}
		} else if c.positive[i].Action() == automaton.Include {
			return false
		}
	}
	return true
}

// Update gives the clause Type I feedback when target is true and Type II
// feedback when it is false. output is the clause's current value on input.
func (c *Clause) Update(input []bool, target, output bool, specificity float64, rng automaton.Source) {
	if target {
		if output {
			c.reinforce(input)
		} else {
			c.widen(input, specificity/(specificity+1), rng)
		}
	} else if output {
		c.narrow(1/specificity, rng)
	}
}

// reinforce rewards included literals agreeing with input and penalizes those contradicting it
func (c *Clause) reinforce(input []bool) {
	for i := range c.positive {
		if c.positive[i].Action() == automaton.Include {
			if input[i] {
				c.positive[i].Reward()
			} else {
				c.positive[i].Penalize()
			}
		}
		if c.negative[i].Action() == automaton.Include {
			if !input[i] {
				c.negative[i].Reward()
			} else {
				c.negative[i].Penalize()
			}
		}
	}
}

// widen nudges excluded literals satisfied by input with probability p.
// The update is a penalty: an excluded automaton steps towards Include.
func (c *Clause) widen(input []bool, p float64, rng automaton.Source) {
	for i := range c.positive {
		if input[i] && c.positive[i].Action() == automaton.Exclude {
			c.positive[i].UpdateWithProbability(false, p, rng)
		}
		if !input[i] && c.negative[i].Action() == automaton.Exclude {
			c.negative[i].UpdateWithProbability(false, p, rng)
		}
	}
}

// narrow penalizes every included literal with probability p
func (c *Clause) narrow(p float64, rng automaton.Source) {
	for i := range c.positive {
		if c.positive[i].Action() == automaton.Include {
			c.positive[i].UpdateWithProbability(false, p, rng)
		}
		if c.negative[i].Action() == automaton.Include {
			c.negative[i].UpdateWithProbability(false, p, rng)
		}
	}
}

// AppendStates appends the positive states followed by the negative states to dst
func (c *Clause) AppendStates(dst []int32) []int32 {
	for i := range c.positive {
		dst = append(dst, c.positive[i].State())
	}
	for i := range c.negative {
		dst = append(dst, c.negative[i].State())
	}
	return dst
}
