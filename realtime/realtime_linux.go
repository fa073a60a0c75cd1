//go:build linux

// Package realtime gives a process the two guarantees a sample-accurate
// audio callback actually needs from the OS: its working set won't be
// paged out, and its scheduling class won't be preempted by ordinary
// priority-based contention. Neither is something screech's core
// package touches (the Patchbay/Processor pair has no knowledge of the
// host OS at all), which is why this lives in its own satellite
// package rather than screech itself.
package realtime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// LockMemory pins the calling process's entire address space in RAM via
// mlockall, so a page fault never stalls an audio callback mid-tick.
func LockMemory() error {
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		return fmt.Errorf("realtime: mlockall: %w", err)
	}

	return nil
}

// UnlockMemory reverses LockMemory.
func UnlockMemory() error {
	if err := unix.Munlockall(); err != nil {
		return fmt.Errorf("realtime: munlockall: %w", err)
	}

	return nil
}

// SetRealtimePriority switches the calling thread to SCHED_FIFO at the
// given priority (1-99; higher preempts lower). Callers must have
// CAP_SYS_NICE or run as root, same as the underlying syscall requires.
func SetRealtimePriority(priority int) error {
	if priority < 1 || priority > 99 {
		return fmt.Errorf("realtime: priority %d out of range [1, 99]", priority)
	}

	param := &unix.SchedParam{Priority: int32(priority)}

	if err := unix.SchedSetscheduler(0, unix.SCHED_FIFO, param); err != nil {
		return fmt.Errorf("realtime: sched_setscheduler: %w", err)
	}

	return nil
}
