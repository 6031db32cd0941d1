package parallel

import "crypto/sha256"
import "hash"
import "sync"

// Hasher folds digests computed out of order into one sha256, in index order.
// Digests are streamed into the sha as soon as all lower indexes arrived.
type Hasher struct {
	mut   sync.Mutex
	sha   hash.Hash
	ate   int
	slots [][32]byte
	put   []bool
}

// NewHashHasher creates a Hasher expecting n digests
func NewHashHasher(n int) *Hasher {
	return &Hasher{
		sha:   sha256.New(),
		slots: make([][32]byte, n),
		put:   make([]bool, n),
	}
}

// MustPutHash stores digest number n. Panics when n was already put or consumed.
func (h *Hasher) MustPutHash(n int, value [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()

	if n < h.ate || h.put[n] {
		panic("duplicate hash write")
	}
	h.slots[n] = value
	h.put[n] = true

	for h.ate < len(h.slots) && h.put[h.ate] {
		h.sha.Write(h.slots[h.ate][:])
		h.ate++
	}
}

// Sum returns the sha256 of all digests in index order. Missing digests hash as zeros.
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()
	for h.ate < len(h.slots) {
		h.sha.Write(h.slots[h.ate][:])
		h.put[h.ate] = true
		h.ate++
	}
	copy(ret[:], h.sha.Sum(nil))
	return
}
