// Package machine implements the Tsetlin machine: a clause bank trained by
// per-sample stochastic feedback and queried by its vote.
package machine

import crypto_rand "crypto/rand"
import "encoding/binary"
import "errors"
import "fmt"
import "math/rand/v2"

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/clause"
import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/parallel"

var (
	// ErrShapeMismatch is returned when a table does not fit the machine or its labels.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyLabels is returned when evaluating against no labels.
	ErrEmptyLabels = errors.New("no labels to evaluate against")
)

// Source is the stochastic source a machine owns. *rand.Rand from math/rand/v2 is one.
type Source interface {
	automaton.Source

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Machine is a Tsetlin machine. It is not safe for concurrent use while Fit runs.
type Machine struct {
	bank *clause.Bank
	h    HyperParameters
	rng  Source
	seed uint64
}

// New creates a machine with a PCG source seeded from h.Seed.
func New(h HyperParameters) (*Machine, error) {
	var seed = h.Seed
	if seed == 0 {
		var b [8]byte
		_, err := crypto_rand.Read(b[:])
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		seed = binary.LittleEndian.Uint64(b[:])
	}
	m, err := NewWithSource(h, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return nil, err
	}
	m.seed = seed
	return m, nil
}

// NewWithSource creates a machine drawing from rng. The machine owns rng from now on.
func NewWithSource(h HyperParameters, rng Source) (*Machine, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil stochastic source", ErrConfig)
	}
	bank, err := clause.NewBank(h.Features, h.Clauses, h.States)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return &Machine{bank: bank, h: h, rng: rng}, nil
}

// WithDefaults creates a machine with default specificity, threshold and states, seeded from crypto/rand.
func WithDefaults(features, clauses int) (*Machine, error) {
	return New(DefaultHyperParameters(features, clauses))
}

// HyperParameters gets the configuration the machine was built with
func (m *Machine) HyperParameters() HyperParameters {
	return m.h
}

// Seed gets the seed of the source created by New, 0 for machines from NewWithSource
func (m *Machine) Seed() uint64 {
	return m.seed
}

// Features gets the number of input features
func (m *Machine) Features() int {
	return m.h.Features
}

// Clauses gets the number of clauses
func (m *Machine) Clauses() int {
	return m.h.Clauses
}

func (m *Machine) checkTable(features datasets.Table) error {
	if features.Cols() != m.h.Features {
		return fmt.Errorf("table has %d columns, machine has %d features: %w", features.Cols(), m.h.Features, ErrShapeMismatch)
	}
	return nil
}

func (m *Machine) checkLabels(features datasets.Table, labels []bool) error {
	if features.Rows() != len(labels) {
		return fmt.Errorf("table has %d rows, got %d labels: %w", features.Rows(), len(labels), ErrShapeMismatch)
	}
	return m.checkTable(features)
}

// Fit trains the machine for epochs epochs. Each epoch visits the samples in a
// fresh random order and updates the clause bank once per sample.
//
// Fit is resumable, not replayable: a second call continues from the current
// automata and source state, so two calls of n epochs generally differ from one call of 2n.
// Nothing is modified when the shapes do not match.
func (m *Machine) Fit(features datasets.Table, labels []bool, epochs int) error {
	if err := m.checkLabels(features, labels); err != nil {
		return err
	}
	var indices = make([]int, features.Rows())
	for i := range indices {
		indices[i] = i
	}
	for epoch := 0; epoch < epochs; epoch++ {
		m.rng.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
		for _, idx := range indices {
			m.bank.Update(features.Row(idx), labels[idx], m.h.Threshold, m.h.Specificity, m.rng)
		}
	}
	return nil
}

// Vote gets the clause bank vote on one row.
func (m *Machine) Vote(row []bool) (int, error) {
	if len(row) != m.h.Features {
		return 0, fmt.Errorf("row has %d values, machine has %d features: %w", len(row), m.h.Features, ErrShapeMismatch)
	}
	return m.bank.Vote(row), nil
}

// PredictSingle predicts one row. A tied vote predicts false.
func (m *Machine) PredictSingle(row []bool) (bool, error) {
	vote, err := m.Vote(row)
	if err != nil {
		return false, err
	}
	return vote > 0, nil
}

// Predict predicts every row of features. Rows are scored concurrently, so
// features must allow concurrent reads.
func (m *Machine) Predict(features datasets.Table) ([]bool, error) {
	if err := m.checkTable(features); err != nil {
		return nil, err
	}
	var o = make([]bool, features.Rows())
	if m.h.Threads == 1 {
		for i := range o {
			o[i] = m.bank.Vote(features.Row(i)) > 0
		}
		return o, nil
	}
	parallel.ForEach(len(o), m.h.Threads, func(i int) {
		o[i] = m.bank.Vote(features.Row(i)) > 0
	})
	return o, nil
}

// Evaluate gets the fraction of rows predicted equal to their label.
func (m *Machine) Evaluate(features datasets.Table, labels []bool) (float64, error) {
	if len(labels) == 0 {
		return 0, ErrEmptyLabels
	}
	if err := m.checkLabels(features, labels); err != nil {
		return 0, err
	}
	predictions, err := m.Predict(features)
	if err != nil {
		return 0, err
	}
	var correct int
	for i := range predictions {
		if predictions[i] == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

// Rules renders the clauses, positive ones first
func (m *Machine) Rules() []clause.Rule {
	return m.bank.Rules()
}
