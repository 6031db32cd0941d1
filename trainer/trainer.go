package trainer

import "fmt"
import "math"

import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/parallel"

// Machine is what Train drives. *machine.Machine is one.
type Machine interface {
	Fit(features datasets.Table, labels []bool, epochs int) error
	Evaluate(features datasets.Table, labels []bool) (float64, error)
	Fingerprint() [32]byte
}

// Default trainer hyper parameters
const (
	DefaultEpochs         = 200
	DefaultEpochsPerRound = 10
	DefaultTargetAccuracy = 100
	DefaultSignificance   = 99
)

// HyperParameters configures the training rounds.
type HyperParameters struct {
	Epochs         int  // total epoch budget
	EpochsPerRound int  // epochs between two evaluations, 0 for a single round
	TargetAccuracy int  // success percentage to stop at, above 100 never stops early
	Significance   byte // confidence of the sampled evaluation in percent, 0 evaluates every row
}

// NewHyperParameters gets the default trainer hyper parameters
func NewHyperParameters() HyperParameters {
	return HyperParameters{
		Epochs:         DefaultEpochs,
		EpochsPerRound: DefaultEpochsPerRound,
		TargetAccuracy: DefaultTargetAccuracy,
		Significance:   DefaultSignificance,
	}
}

// Round is a progress report after a round of training.
// Round 0 is the evaluation before any training.
type Round struct {
	Number      int
	Epochs      int // epochs trained so far
	Success     int // percent
	Accuracy    float64
	Fingerprint [32]byte
}

// Recorder receives every round. Train stops on the first error it returns.
type Recorder interface {
	Record(Round) error
}

// RecorderFunc adapts a function to a Recorder
type RecorderFunc func(Round) error

// Record calls f(r)
func (f RecorderFunc) Record(r Round) error {
	return f(r)
}

// Stop tells why training ended
type Stop byte

const (
	Exhausted Stop = iota // epoch budget spent
	Target                // target accuracy reached
	Stuck                 // automata returned to an already seen state
)

func (s Stop) String() string {
	switch s {
	case Target:
		return "target"
	case Stuck:
		return "stuck"
	default:
		return "exhausted"
	}
}

// Result summarizes a training run
type Result struct {
	Rounds  int
	Epochs  int
	Success int
	Stopped Stop
}

// head is the leading rows of a table
type head struct {
	datasets.Table
	rows int
}

func (h head) Rows() int {
	return h.rows
}

func percent(accuracy float64) int {
	return int(math.Floor(accuracy*100 + 1e-9))
}

// evaluate measures success on a sample of the first rows. A sample meeting
// the target is confirmed on the whole table.
func evaluate(m Machine, features datasets.Table, labels []bool, h HyperParameters) (float64, error) {
	var rows = features.Rows()
	var l = sampleSize(rows, h.Significance)
	if l >= rows {
		return m.Evaluate(features, labels)
	}
	accuracy, err := m.Evaluate(head{features, l}, labels[:l])
	if err != nil {
		return 0, err
	}
	if percent(accuracy) >= h.TargetAccuracy {
		return m.Evaluate(features, labels)
	}
	return accuracy, nil
}

// Train fits m on features and labels in rounds of h.EpochsPerRound epochs, reporting each
// round to rec, which may be nil. Errors from m and rec are returned as they are.
func Train(m Machine, features datasets.Table, labels []bool, h HyperParameters, rec Recorder) (res Result, err error) {
	if features.Rows() != len(labels) {
		// let the machine phrase the mismatch
		return res, m.Fit(features, labels, 0)
	}
	var perRound = h.EpochsPerRound
	if perRound <= 0 || perRound > h.Epochs {
		perRound = h.Epochs
	}
	var seen = parallel.NewStateSet()

	var report = func(number int) (stop bool, err error) {
		accuracy, err := evaluate(m, features, labels, h)
		if err != nil {
			return false, err
		}
		var round = Round{
			Number:      number,
			Epochs:      res.Epochs,
			Success:     percent(accuracy),
			Accuracy:    accuracy,
			Fingerprint: m.Fingerprint(),
		}
		res.Success = round.Success
		logln(fmt.Sprintf("[success rate] %d %% round %d epochs %d state %x", round.Success, number, res.Epochs, round.Fingerprint[:8]))
		if rec != nil {
			if err := rec.Record(round); err != nil {
				return false, fmt.Errorf("record round %d: %w", number, err)
			}
		}
		if round.Success >= h.TargetAccuracy {
			res.Stopped = Target
			return true, nil
		}
		if !seen.Insert(round.Fingerprint, round.Success) {
			logln("Infinite loop - algorithm stuck in local minimum")
			res.Stopped = Stuck
			return true, nil
		}
		return false, nil
	}

	if stop, err := report(0); stop || err != nil {
		return res, err
	}
	for res.Epochs < h.Epochs {
		var epochs = min(perRound, h.Epochs-res.Epochs)
		if err := m.Fit(features, labels, epochs); err != nil {
			return res, err
		}
		res.Epochs += epochs
		res.Rounds++
		if stop, err := report(res.Rounds); stop || err != nil {
			return res, err
		}
	}
	res.Stopped = Exhausted
	return res, nil
}
