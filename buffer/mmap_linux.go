//go:build linux

package buffer

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	mmapProt  = unix.PROT_READ | unix.PROT_WRITE
	mmapFlags = unix.MAP_PRIVATE | unix.MAP_ANON
)

// MmapAllocator maps anonymous private memory and grows it in place with
// mremap, moving the mapping only when the kernel has to. No copy ever goes
// through the Go heap and the mapping is sized exactly as requested.
//
// Mappings are made without MAP_NORESERVE, so they count against the
// kernel's overcommit accounting.
type MmapAllocator struct{}

func (MmapAllocator) Grow(mem []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid mapping size %d", size)
	}
	if len(mem) == 0 {
		b, err := unix.Mmap(-1, 0, size, mmapProt, mmapFlags)
		if err != nil {
			return nil, errors.Wrap(err, "mmap")
		}
		return b, nil
	}
	// x/sys tracks mappings by their full extent.
	b, err := unix.Mremap(mem[:cap(mem)], size, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, errors.Wrap(err, "mremap")
	}
	return b, nil
}

func (MmapAllocator) Free(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	return errors.Wrap(unix.Munmap(mem[:cap(mem)]), "munmap")
}
