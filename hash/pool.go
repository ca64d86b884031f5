package hash

import (
	"sync"

	"github.com/spacemeshos/go-xofhash/hasher"
)

// Pool is a global hasher pool. It is meant to amortize allocations
// of plain hashers over time by allowing clients to reuse them.
var pool = &sync.Pool{
	New: func() any {
		h, err := hasher.New()
		if err != nil {
			panic(err)
		}
		return h
	},
}

// GetHasher will get a plain hasher from the pool.
// It may or may not allocate a new one.
func GetHasher() *hasher.Hasher {
	return pool.Get().(*hasher.Hasher)
}

// PutHasher resets the hasher and returns it back to the pool.
// Only plain hashers obtained from GetHasher belong in the pool.
func PutHasher(h *hasher.Hasher) {
	h.Reset()
	pool.Put(h)
}
