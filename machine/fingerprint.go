package machine

import "crypto/sha256"
import "encoding/binary"

import "github.com/neurlang/tsetlin/parallel"

// States gets every automaton state, clause by clause, positive literals before negative ones.
func (m *Machine) States() (o []int32) {
	o = make([]int32, 0, 2*m.h.Features*m.h.Clauses)
	for i := 0; i < m.bank.Len(); i++ {
		o = m.bank.Clause(i).AppendStates(o)
	}
	return
}

// Fingerprint hashes the automaton states. Two machines of the same shape have
// the same fingerprint exactly when their automata are in the same states.
func (m *Machine) Fingerprint() [32]byte {
	var h = parallel.NewHashHasher(m.bank.Len())
	parallel.ForEach(m.bank.Len(), m.h.Threads, func(i int) {
		var states = m.bank.Clause(i).AppendStates(make([]int32, 0, 2*m.h.Features))
		var buf = make([]byte, 4*len(states))
		for j, s := range states {
			binary.LittleEndian.PutUint32(buf[4*j:], uint32(s))
		}
		h.MustPutHash(i, sha256.Sum256(buf))
	})
	return h.Sum()
}
