// Package pool holds sync.Pool backed buffers shared by the parsers.
package pool

import "sync"

const defaultByteSliceCapacity = 64

// ByteSlicePool hands out zero-length byte slices. Slices returned by
// Put are truncated and recycled; slices with a capacity larger than
// maxRecycledCapacity are dropped so one huge input does not pin memory.
type ByteSlicePool struct {
	pool sync.Pool
}

const maxRecycledCapacity = 1 << 20

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: allocByteSlice,
	},
}

func allocByteSlice() any {
	b := make([]byte, 0, defaultByteSliceCapacity)
	return &b
}

// ByteSlice returns the process-wide byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// GetCapacity returns an empty slice whose capacity is at least n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := *(p.pool.Get().(*[]byte))
	if cap(b) < n {
		p.pool.Put(&b)
		return make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *ByteSlicePool) Put(b []byte) {
	if cap(b) > maxRecycledCapacity {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
