package buffer

import (
	"github.com/pkg/errors"
	"modernc.org/memory"
)

// Allocator hands out raw memory outside the Go heap.
//
// Grow returns a region of exactly size usable bytes whose prefix holds the
// contents of mem. On failure mem must still be valid and untouched. A nil
// or empty mem asks for a fresh region.
type Allocator interface {
	Grow(mem []byte, size int) ([]byte, error)
	Free(mem []byte) error
}

// HeapAllocator serves regions from modernc.org/memory, an mmap backed
// allocator that never involves the Go garbage collector.
type HeapAllocator struct {
	a memory.Allocator
}

// NewHeapAllocator returns a ready to use HeapAllocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

func (h *HeapAllocator) Grow(mem []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid region size %d", size)
	}
	b, err := h.a.Realloc(mem, size)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.New("allocator returned no memory")
	}
	// Realloc may round the backing array up; only the requested
	// size is ours to report.
	return b[:size:size], nil
}

func (h *HeapAllocator) Free(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	return h.a.Free(mem)
}
