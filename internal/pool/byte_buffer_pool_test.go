package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(4)

	_, _ = bb.WriteString("[1")
	_ = bb.WriteByte(',')
	_, _ = bb.Write([]byte("2]"))

	assert.Equal(t, []byte("[1,2]"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())
}

func TestByteBuffer_ResetKeepsCapacity(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	_, _ = bb.WriteString("some data")
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Truncate(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.WriteString(`{"a":1`)

	bb.Truncate(1)
	assert.Equal(t, []byte("{"), bb.Bytes())

	assert.Panics(t, func() { bb.Truncate(5) })
	assert.Panics(t, func() { bb.Truncate(-1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		_, _ = bb.WriteString("abc")
		bb.Grow(10)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.WriteString("abcdefgh")
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), 8+DocumentBufferDefaultSize)
		assert.Equal(t, []byte("abcdefgh"), bb.Bytes())
	})

	t.Run("large request wins", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * DocumentBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*DocumentBufferDefaultSize)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.WriteString("null")

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "null", out.String())
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.Grow(1024)
	p.Put(bb)

	again := p.Get()
	assert.LessOrEqual(t, again.Cap(), 32)
	p.Put(nil)
}

func TestDefaultPools(t *testing.T) {
	doc := GetDocumentBuffer()
	require.NotNil(t, doc)
	assert.Equal(t, 0, doc.Len())
	_, _ = doc.WriteString("x")
	PutDocumentBuffer(doc)

	scratch := GetScratchBuffer()
	require.NotNil(t, scratch)
	assert.Equal(t, 0, scratch.Len())
	PutScratchBuffer(scratch)
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				_, _ = bb.WriteString("payload")
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}
