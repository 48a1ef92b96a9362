package avro

import "sync"

// scratchPool reuses small byte slices for encoding varints and other
// short, bounded-size fields (a zig-zag long never needs more than 10
// bytes; a float or double needs 4 or 8),
// avoiding an allocation on every primitive write. This mirrors the
// teacher's bytesBufPool/bufPool: pool scratch space instead of letting
// GC pressure scale with call volume.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 16)
		return &b
	},
}

func getScratch() *[]byte {
	b := scratchPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

func putScratch(b *[]byte) {
	scratchPool.Put(b)
}
