//go:build !linux

package limits

func readPlatform(*Snapshot) {}
