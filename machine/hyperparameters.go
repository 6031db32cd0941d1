package machine

import "errors"
import "fmt"
import "math"

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/clause"

// Default hyper parameters
const (
	DefaultSpecificity = 2.0
	DefaultThreshold   = 1.0
	DefaultStates      = automaton.DefaultStates
)

// ErrConfig wraps every hyper parameter validation failure.
var ErrConfig = errors.New("invalid machine configuration")

var (
	// ErrClauses is returned for an odd or non-positive number of clauses.
	ErrClauses = clause.ErrClauses

	// ErrStates is returned for automata with no states.
	ErrStates = automaton.ErrStates

	// ErrFeatures is returned for a non-positive number of features.
	ErrFeatures = errors.New("number of features must be positive")

	// ErrSpecificity is returned for a non-positive or non-finite specificity.
	ErrSpecificity = errors.New("specificity must be positive and finite")

	// ErrThreshold is returned for a non-positive or non-finite threshold.
	ErrThreshold = errors.New("threshold must be positive and finite")
)

// HyperParameters configures the shape and learning of a machine.
type HyperParameters struct {
	Features int // number of boolean input features
	Clauses  int // number of clauses, even: first half votes for, second half against

	Specificity float64 // how aggressively clauses specialize (s)
	Threshold   float64 // vote margin after which a sample stops giving feedback (T)

	States int // number of states per automaton action

	Seed    uint64 // seed of the stochastic source, 0 seeds it from crypto/rand
	Threads int    // number of goroutines scoring rows in Predict, 0 for Parallelism()
}

// DefaultHyperParameters gets the default hyper parameters for features features and clauses clauses.
func DefaultHyperParameters(features, clauses int) HyperParameters {
	return HyperParameters{
		Features:    features,
		Clauses:     clauses,
		Specificity: DefaultSpecificity,
		Threshold:   DefaultThreshold,
		States:      DefaultStates,
	}
}

// Validate checks the hyper parameters, every error wraps ErrConfig
func (h HyperParameters) Validate() error {
	var err error
	switch {
	case h.Clauses <= 0 || h.Clauses%2 != 0:
		err = fmt.Errorf("%d clauses: %w", h.Clauses, ErrClauses)
	case h.Features <= 0:
		err = fmt.Errorf("%d features: %w", h.Features, ErrFeatures)
	case h.States <= 0 || h.States > math.MaxInt32:
		err = fmt.Errorf("%d states: %w", h.States, ErrStates)
	case !(h.Specificity > 0) || math.IsInf(h.Specificity, 0):
		err = fmt.Errorf("specificity %v: %w", h.Specificity, ErrSpecificity)
	case !(h.Threshold > 0) || math.IsInf(h.Threshold, 0):
		err = fmt.Errorf("threshold %v: %w", h.Threshold, ErrThreshold)
	default:
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, err)
}
