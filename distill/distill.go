// Package distill compiles the truth table of a trained machine over few features
// into a quaternary filter.
package distill

import "errors"
import "fmt"

import "github.com/neurlang/quaternary"

import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/parallel"

// MaxWidth is the widest input enumerated by Table
const MaxWidth = 20

// ErrTooWide is returned for widths outside 1..MaxWidth
var ErrTooWide = errors.New("width out of range")

// Predictor answers single rows. *machine.Machine is one.
type Predictor interface {
	PredictSingle(row []bool) (bool, error)
}

// Table predicts every one of the 2^width inputs. Input v has features datasets.Bits(v, width).
func Table(p Predictor, width int) (datasets.Dataset, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("width %d: %w", width, ErrTooWide)
	}
	var n = 1 << width
	var out = make([]bool, n)
	var errs = make([]error, n)
	parallel.ForEach(n, 0, func(v int) {
		out[v], errs[v] = p.PredictSingle(datasets.Bits(uint32(v), width))
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	var d datasets.Dataset
	d.Init()
	for v, o := range out {
		d[uint32(v)] = o
	}
	return d, nil
}

// Filter is a truth table compiled into a quaternary filter
type Filter struct {
	Width     int
	Positives int
	Data      []byte
}

// Len gets the size of the filter in bytes
func (f Filter) Len() int {
	return len(f.Data)
}

// Make compiles the truth table of p over width features
func Make(p Predictor, width int) (Filter, error) {
	d, err := Table(p, width)
	if err != nil {
		return Filter{}, err
	}
	var f = Filter{Width: width}
	for _, v := range d {
		if v {
			f.Positives++
		}
	}
	var q []byte = quaternary.Make(d)
	f.Data = q
	return f, nil
}
