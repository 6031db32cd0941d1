package clause

import "errors"

import "github.com/neurlang/tsetlin/automaton"

// ErrClauses is returned when a bank cannot be split into equal positive and negative halves.
var ErrClauses = errors.New("number of clauses must be even and positive")

// Bank is an ensemble of clauses. The first half votes for the positive class,
// the second half against it.
type Bank struct {
	clauses    []Clause
	polarities []bool
}

// NewBank creates clauses clauses over features features, each automaton having states states per action.
func NewBank(features, clauses, states int) (*Bank, error) {
	if clauses <= 0 || clauses%2 != 0 {
		return nil, ErrClauses
	}
	b := &Bank{
		clauses:    make([]Clause, clauses),
		polarities: make([]bool, clauses),
	}
	for i := range b.clauses {
		c, err := New(features, states)
		if err != nil {
			return nil, err
		}
		b.clauses[i] = c
		b.polarities[i] = i < clauses/2
	}
	return b, nil
}

// Len gets the number of clauses
func (b *Bank) Len() int {
	return len(b.clauses)
}

// Clause gets the n-th clause
func (b *Bank) Clause(n int) *Clause {
	return &b.clauses[n]
}

// Polarity reports whether the n-th clause votes for the positive class
func (b *Bank) Polarity(n int) bool {
	return b.polarities[n]
}

// Vote sums +1 for each firing positive clause and -1 for each firing negative clause.
func (b *Bank) Vote(input []bool) (sum int) {
	for i := range b.clauses {
		if b.clauses[i].Evaluate(input) {
			if b.polarities[i] {
				sum++
			} else {
				sum--
			}
		}
	}
	return
}

// Update trains the bank on one sample. The vote is computed once; when it
// has not yet reached threshold in the direction of target, every clause gets
// feedback, negative clauses learning the complement of target.
func (b *Bank) Update(input []bool, target bool, threshold, specificity float64, rng automaton.Source) {
	var sum = b.Vote(input)
	var t = int(threshold)
	if target && sum >= t {
		return
	}
	if !target && sum <= -t {
		return
	}
	for i := range b.clauses {
		var output = b.clauses[i].Evaluate(input)
		b.clauses[i].Update(input, target == b.polarities[i], output, specificity, rng)
	}
}
