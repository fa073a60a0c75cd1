//go:build linux

package audiodriver

import (
	"fmt"

	"github.com/jochenvg/go-udev"
)

// HotplugWatcher reports sound-card arrival and removal from the Linux
// "sound" udev subsystem, so a long-running screech host can decide
// whether to reopen a Stream rather than notice only when the next
// write already failed.
type HotplugWatcher struct {
	monitor *udev.Monitor
	device  chan *udev.Device
}

// WatchSoundcards starts listening for udev "sound" subsystem events.
// The watcher's Events channel receives one *udev.Device per event in
// that subsystem. HotplugWatcher has no Close method: once started,
// monitoring runs for the life of the process.
func WatchSoundcards() (*HotplugWatcher, error) {
	u := udev.Udev{}
	monitor := u.NewMonitorFromNetlink("udev")

	if err := monitor.FilterAddMatchSubsystem("sound"); err != nil {
		return nil, fmt.Errorf("audiodriver: filter sound subsystem: %w", err)
	}

	deviceCh, _, err := monitor.DeviceChan(make(chan struct{}))
	if err != nil {
		return nil, fmt.Errorf("audiodriver: start udev monitor: %w", err)
	}

	return &HotplugWatcher{monitor: monitor, device: deviceCh}, nil
}

// Events returns the channel of hotplug device events.
func (w *HotplugWatcher) Events() <-chan *udev.Device {
	return w.device
}
