package buffer

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("cannot allocate memory")

// fakeAllocator serves regions from the Go heap and refuses every Grow
// after the first `allow` calls (allow < 0 never refuses).
type fakeAllocator struct {
	allow int
	grows []int
	freed int
}

func (f *fakeAllocator) Grow(mem []byte, size int) ([]byte, error) {
	f.grows = append(f.grows, size)
	if f.allow >= 0 && len(f.grows) > f.allow {
		return nil, errRefused
	}
	b := make([]byte, size)
	copy(b, mem)
	return b, nil
}

func (f *fakeAllocator) Free(mem []byte) error {
	f.freed++
	return nil
}

func TestReserveExact(t *testing.T) {
	tests := []struct {
		name    string
		written int
		reserve int
		wantCap int
		grows   int
	}{
		{name: "empty", written: 0, reserve: 16, wantCap: 16, grows: 1},
		{name: "full", written: 16, reserve: 16, wantCap: 32, grows: 2},
		{name: "enough-room", written: 4, reserve: 12, wantCap: 16, grows: 1},
		{name: "partial-room", written: 10, reserve: 16, wantCap: 26, grows: 2},
		{name: "zero", written: 0, reserve: 0, wantCap: 0, grows: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAllocator{allow: -1}
			b := New(fa)
			if tt.written > 0 {
				require.NoError(t, b.ReserveExact(16))
				for i := 0; i < tt.written; i++ {
					b.AppendByte(1)
				}
			}
			require.NoError(t, b.ReserveExact(tt.reserve))
			assert.Equal(t, tt.wantCap, b.Cap())
			assert.Equal(t, tt.written, b.Len())
			assert.Len(t, fa.grows, tt.grows)
		})
	}
}

func TestReserveExactRefusedLeavesBufferUnchanged(t *testing.T) {
	fa := &fakeAllocator{allow: 1}
	b := New(fa)
	require.NoError(t, b.ReserveExact(8))
	for i := 0; i < 8; i++ {
		b.AppendByte(byte(i))
	}

	err := b.ReserveExact(8)
	require.Error(t, err)

	var re *ReservationError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 8, re.Requested)
	assert.Equal(t, errRefused, errors.Cause(err))
	assert.Contains(t, err.Error(), "8 bytes")

	assert.Equal(t, 8, b.Len())
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, b.Bytes())
}

func TestReserveExactOverflow(t *testing.T) {
	fa := &fakeAllocator{allow: -1}
	b := New(fa)
	require.NoError(t, b.ReserveExact(1))
	b.AppendByte(1)

	err := b.ReserveExact(int(^uint(0) >> 1))
	var re *ReservationError
	require.True(t, errors.As(err, &re))
	assert.Len(t, fa.grows, 1, "allocator must not be asked for an overflowing size")
}

func TestAppendByteWithoutCapacityPanics(t *testing.T) {
	b := New(&fakeAllocator{allow: -1})
	assert.Panics(t, func() { b.AppendByte(0) })
}

func TestClose(t *testing.T) {
	fa := &fakeAllocator{allow: -1}
	b := New(fa)
	require.NoError(t, b.ReserveExact(4))
	b.AppendByte(9)
	require.NoError(t, b.Close())
	assert.Equal(t, 1, fa.freed)
	assert.Zero(t, b.Len())
	assert.Zero(t, b.Cap())
}

func TestHeapAllocatorPreservesContents(t *testing.T) {
	h := NewHeapAllocator()
	b := New(h)
	defer func() { require.NoError(t, b.Close()) }()

	const chunk = 64 << 10
	want := &bytes.Buffer{}
	for i := 0; i < 3; i++ {
		require.NoError(t, b.ReserveExact(chunk))
		assert.Equal(t, (i+1)*chunk, b.Cap())
		for j := 0; j < chunk; j++ {
			c := byte(i*7 + j)
			b.AppendByte(c)
			want.WriteByte(c)
		}
	}
	assert.Equal(t, want.Bytes(), b.Bytes())
}

func TestHeapAllocatorInvalidSize(t *testing.T) {
	_, err := NewHeapAllocator().Grow(nil, 0)
	assert.Error(t, err)
}
