package stream

import "sync"

var scratchPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 64)
	},
}

// getScratch returns a byte slice of length size, reused from a pool to
// avoid an allocation per primitive write.
func getScratch(size int) []byte {
	buf := scratchPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// putScratch returns a scratch buffer to the pool.
func putScratch(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	scratchPool.Put(buf[:0])
}
