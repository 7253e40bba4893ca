package buffer

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ReservationError is returned when the allocator refuses to extend a
// Buffer. The buffer is left exactly as it was.
type ReservationError struct {
	Requested int // additional bytes asked for
	Err       error
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("reservation of %d bytes refused: %v", e.Requested, e.Err)
}

func (e *ReservationError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors walk through the reservation.
func (e *ReservationError) Cause() error { return e.Err }

// Buffer is a contiguous byte region with an independently observable
// length (written bytes) and capacity (reserved bytes). It only grows.
type Buffer struct {
	alloc Allocator
	mem   []byte // len(mem) is the reserved capacity
	n     int    // bytes written
}

// New returns an empty buffer backed by a.
func New(a Allocator) *Buffer {
	return &Buffer{alloc: a}
}

func (b *Buffer) Len() int { return b.n }

func (b *Buffer) Cap() int { return len(b.mem) }

// Bytes returns the written part of the buffer. It aliases the buffer's
// memory and is invalidated by the next ReserveExact.
func (b *Buffer) Bytes() []byte { return b.mem[:b.n] }

// ReserveExact makes sure at least n more bytes can be appended without
// over-allocating: when growth is needed the capacity becomes exactly
// Len()+n.
func (b *Buffer) ReserveExact(n int) error {
	if n <= 0 || len(b.mem)-b.n >= n {
		return nil
	}
	if n > math.MaxInt-b.n {
		return &ReservationError{Requested: n, Err: errors.New("capacity overflow")}
	}
	mem, err := b.alloc.Grow(b.mem, b.n+n)
	if err != nil {
		return &ReservationError{Requested: n, Err: err}
	}
	b.mem = mem
	return nil
}

// AppendByte writes c at position Len() and advances the length. The caller
// must have reserved room for it.
func (b *Buffer) AppendByte(c byte) {
	if b.n == len(b.mem) {
		panic("buffer: append beyond reserved capacity")
	}
	b.mem[b.n] = c
	b.n++
}

// Close hands the memory back to the allocator. The buffer is empty
// afterwards.
func (b *Buffer) Close() error {
	mem := b.mem
	b.mem, b.n = nil, 0
	return b.alloc.Free(mem)
}
