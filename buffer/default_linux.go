//go:build linux

package buffer

// Default returns the allocator memfill uses on this platform.
func Default() Allocator {
	return MmapAllocator{}
}
