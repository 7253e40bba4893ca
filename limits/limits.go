// Package limits takes a snapshot of the memory ceilings the process runs
// under, for context next to the number memfill ends up measuring.
package limits

import (
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
)

// Unlimited marks a ceiling that is not set, or not known.
const Unlimited = ^uint64(0)

// Overcommit is the kernel's vm.overcommit_memory policy.
type Overcommit int

const (
	OvercommitUnknown   Overcommit = -1
	OvercommitHeuristic Overcommit = 0
	OvercommitAlways    Overcommit = 1
	OvercommitNever     Overcommit = 2
)

func (o Overcommit) String() string {
	switch o {
	case OvercommitHeuristic:
		return "heuristic"
	case OvercommitAlways:
		return "always"
	case OvercommitNever:
		return "never"
	default:
		return "unknown"
	}
}

type Snapshot struct {
	TotalMemory  uint64 // physical memory, 0 if unknown
	AddressSpace uint64 // RLIMIT_AS soft limit
	Data         uint64 // RLIMIT_DATA soft limit
	Cgroup       uint64 // memory cgroup limit
	Overcommit   Overcommit
}

// Read never fails: whatever cannot be determined is reported as Unlimited
// (or OvercommitUnknown).
func Read() Snapshot {
	s := Snapshot{
		TotalMemory:  memory.TotalMemory(),
		AddressSpace: Unlimited,
		Data:         Unlimited,
		Cgroup:       Unlimited,
		Overcommit:   OvercommitUnknown,
	}
	readPlatform(&s)
	return s
}

// Effective is the smallest known ceiling, or Unlimited.
func (s Snapshot) Effective() uint64 {
	eff := Unlimited
	for _, v := range []uint64{s.TotalMemory, s.AddressSpace, s.Data, s.Cgroup} {
		if v > 0 && v < eff {
			eff = v
		}
	}
	return eff
}

func (s Snapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Str("total_memory", humanBytes(s.TotalMemory)).
		Str("address_space", humanBytes(s.AddressSpace)).
		Str("data", humanBytes(s.Data)).
		Str("cgroup", humanBytes(s.Cgroup)).
		Str("overcommit", s.Overcommit.String()).
		Str("effective", humanBytes(s.Effective()))
}

func humanBytes(v uint64) string {
	switch v {
	case Unlimited:
		return "unlimited"
	case 0:
		return "unknown"
	}
	return units.BytesSize(float64(v))
}

// parseLimit reads a cgroup style limit value: a byte count or "max".
// cgroup v1 spells "no limit" as a huge page-aligned number, so anything
// from 2^62 up counts as unlimited too.
func parseLimit(raw string) (uint64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "max" {
		return Unlimited, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	if v >= 1<<62 {
		return Unlimited, true
	}
	return v, true
}

func parseOvercommit(raw string) Overcommit {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 || v > 2 {
		return OvercommitUnknown
	}
	return Overcommit(v)
}

// cgroupPath extracts the unified (v2) hierarchy path from the contents of
// /proc/self/cgroup.
func cgroupPath(procCgroup string) (string, bool) {
	for _, line := range strings.Split(procCgroup, "\n") {
		if p, ok := strings.CutPrefix(line, "0::"); ok {
			return p, true
		}
	}
	return "", false
}
