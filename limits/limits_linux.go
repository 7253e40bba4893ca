//go:build linux

package limits

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	procCgroupFile = "/proc/self/cgroup"
	overcommitFile = "/proc/sys/vm/overcommit_memory"
	cgroupRoot     = "/sys/fs/cgroup"
)

func readPlatform(s *Snapshot) {
	s.AddressSpace = rlimit(unix.RLIMIT_AS)
	s.Data = rlimit(unix.RLIMIT_DATA)
	s.Cgroup = cgroupLimit(cgroupRoot, procCgroupFile)
	if raw, err := os.ReadFile(overcommitFile); err == nil {
		s.Overcommit = parseOvercommit(string(raw))
	}
}

func rlimit(resource int) uint64 {
	var r unix.Rlimit
	if err := unix.Getrlimit(resource, &r); err != nil || r.Cur == Unlimited {
		return Unlimited
	}
	return r.Cur
}

// cgroupLimit looks for memory.max of the process's v2 cgroup, then for the
// v1 memory controller's limit.
func cgroupLimit(root, procCgroup string) uint64 {
	if raw, err := os.ReadFile(procCgroup); err == nil {
		if p, ok := cgroupPath(string(raw)); ok {
			if v, ok := readLimit(filepath.Join(root, p, "memory.max")); ok {
				return v
			}
		}
	}
	if v, ok := readLimit(filepath.Join(root, "memory", "memory.limit_in_bytes")); ok {
		return v
	}
	return Unlimited
}

func readLimit(path string) (uint64, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	return parseLimit(string(raw))
}
