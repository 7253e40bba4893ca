package cfg

// Compile-time settings. None of these are exposed as flags or read from
// the environment.
const (
	AppName        = "memfill"
	AppDescription = "Grow an in-memory buffer until the OS refuses to allocate more."
	Version        = "0.1.0"

	// ClusterSize is both the reservation granularity and the reporting
	// cadence: one binary megabyte.
	ClusterSize = 1 << 20

	// FillByte is written into every reserved byte so the kernel has to
	// commit the backing pages.
	FillByte byte = 0

	StatusFormat = "Buffer: %d bytes (%s)"
)
