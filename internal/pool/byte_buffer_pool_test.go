package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	assert.Equal(t, 3, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite(make([]byte, 4))
	bb.Grow(DefaultBufferSize)
	assert.GreaterOrEqual(t, bb.Cap(), 4+DefaultBufferSize)
	assert.Equal(t, 4, bb.Len(), "grow must not change length")
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.ExtendOrGrow(10)
	assert.Equal(t, 10, bb.Len())
}

func TestByteBuffer_SliceBounds(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.SetLength(4)
	assert.Panics(t, func() { bb.Slice(0, 100) })
}

func TestGetPutBuffer_Roundtrip(t *testing.T) {
	bb := GetBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{9, 9})
	PutBuffer(bb)

	bb2 := GetBuffer()
	assert.Equal(t, 0, bb2.Len(), "PutBuffer must reset before returning to the pool")
	PutBuffer(bb2)
}

func TestPutBuffer_Nil(t *testing.T) {
	assert.NotPanics(t, func() { PutBuffer(nil) })
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb)

	bb2 := p.Get()
	assert.Less(t, bb2.Cap(), 1024)
}
