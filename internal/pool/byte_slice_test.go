package pool_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/lestrrat-go/marked/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestByteSlicePool(t *testing.T) {
	t.Run("GetCapacity and Put", func(t *testing.T) {
		bs := pool.ByteSlice()
		b := bs.GetCapacity(16)
		require.Len(t, b, 0, "fresh slice is empty")
		require.GreaterOrEqual(t, cap(b), 16, "fresh slice has the requested capacity")

		b = append(b, 'a', 'b', 'c')
		bs.Put(b)

		b = bs.GetCapacity(16)
		require.Len(t, b, 0, "recycled slice is truncated")
	})
	t.Run("GetCapacity grows", func(t *testing.T) {
		b := pool.ByteSlice().GetCapacity(4096)
		require.GreaterOrEqual(t, cap(b), 4096, "capacity honors the request")
		pool.ByteSlice().Put(b)
	})
	t.Run("Concurrent use", func(t *testing.T) {
		const n = 16
		const size = 256
		bs := pool.ByteSlice()
		results := make([][]byte, n)

		var wg sync.WaitGroup
		wg.Add(n)
		for i := range n {
			go func() {
				defer wg.Done()
				b := bs.GetCapacity(size)
				defer bs.Put(b)
				for range size {
					b = append(b, byte('A'+i))
				}
				results[i] = bytes.Clone(b)
			}()
		}
		wg.Wait()

		for i, got := range results {
			require.Equal(t, bytes.Repeat([]byte{byte('A' + i)}, size), got, "goroutine %d kept its own buffer", i)
		}
	})
}
