//go:build !windows

package storage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// lockPath blocks until it holds an exclusive advisory lock on path.
// The returned file must be passed to unlock.
func lockPath(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return f, nil
}

// unlock releases the lock. The lock file itself is left in place.
func unlock(f *os.File) error {
	if f == nil {
		return nil
	}
	// LOCK_UN on a descriptor we hold cannot meaningfully fail; Close releases it anyway.
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return f.Close()
}
