// Package datasets implements the boolean tables the Tsetlin machine learns from
package datasets

import "sort"

// Dataset maps an integer sample to its boolean output.
type Dataset map[uint32]bool

func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// Bits expands the low width bits of v into features, least significant bit first.
func Bits(v uint32, width int) []bool {
	var o = make([]bool, width)
	for i := range o {
		o[i] = (v>>uint(i))&1 != 0
	}
	return o
}

// Table materializes the dataset ordered by sample, each sample expanded to width features.
func (d Dataset) Table(width int) (*Matrix, Labels) {
	var keys = make([]uint32, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var data = make([]bool, 0, len(keys)*width)
	var labels = make(Labels, len(keys))
	for i, k := range keys {
		data = append(data, Bits(k, width)...)
		labels[i] = d[k]
	}
	return &Matrix{rows: len(keys), cols: width, data: data}, labels
}
