//go:build !linux

package realtime

import "errors"

var errUnsupported = errors.New("realtime: not supported on this platform")

// LockMemory is a no-op stub outside Linux; mlockall has no portable
// equivalent exposed here.
func LockMemory() error {
	return errUnsupported
}

// UnlockMemory is a no-op stub outside Linux.
func UnlockMemory() error {
	return errUnsupported
}

// SetRealtimePriority is a no-op stub outside Linux.
func SetRealtimePriority(priority int) error {
	return errUnsupported
}
