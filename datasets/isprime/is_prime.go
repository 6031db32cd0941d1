package isprime

import "github.com/jbarham/primegen"

import "github.com/neurlang/tsetlin/datasets"

// Dataslice is every number below 1 << Bits.
type Dataslice struct {
	Bits int
}

// Sample is a number whose binary digits are the features.
type Sample uint32

func (d Dataslice) Get(n int) Sample {
	return Sample(n)
}

func (d Dataslice) Len() int {
	return 1 << uint(d.Bits)
}

// Features expands the sample into d.Bits features
func (d Dataslice) Features(s Sample) []bool {
	return datasets.Bits(uint32(s), d.Bits)
}

// Primes enumerates the primes below d.Len()
func (d Dataslice) Primes() (o []uint32) {
	var pg = primegen.New()
	for p := pg.Next(); p < uint64(d.Len()); p = pg.Next() {
		o = append(o, uint32(p))
	}
	return
}

// Set materializes the Dataslice
func (d Dataslice) Set() (set datasets.Dataset) {
	set.Init()
	for i := 0; i < d.Len(); i++ {
		set[uint32(d.Get(i))] = false
	}
	for _, p := range d.Primes() {
		set[p] = true
	}
	return
}

// Table materializes the Dataslice as a feature table ordered by sample
func (d Dataslice) Table() (*datasets.Matrix, datasets.Labels) {
	return d.Set().Table(d.Bits)
}
