// Package gatewriter drives a single GPIO output line from a
// screech.Signal's threshold crossings, a gate-out jack implemented in
// software, for patches that need to trigger something outside the
// audio graph itself (a relay, an LED, a downstream sequencer's clock
// input) rather than another patch point.
package gatewriter

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/doismellburning/screech"
)

// outputLine is the subset of *gpiocdev.Line that Line needs, split out
// so Update's threshold and state-change logic can be exercised without
// real hardware.
type outputLine interface {
	SetValue(value int) error
	Close() error
}

// Line drives one GPIO output high whenever the watched Signal is at or
// above threshold, and low otherwise.
type Line struct {
	pb        *screech.Patchbay
	signal    screech.Signal
	threshold float32
	state     bool

	line outputLine
}

// Open requests line offset on chip (e.g. "gpiochip0") as an output and
// returns a Line that drives it from watching signal against threshold.
func Open(chip string, offset int, pb *screech.Patchbay, signal screech.Signal, threshold float32) (*Line, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("gatewriter: request line %s:%d: %w", chip, offset, err)
	}

	return &Line{pb: pb, signal: signal, threshold: threshold, line: l}, nil
}

// Update reads the signal's current value and writes the line if its
// high/low state changed since the last Update. Call this once per
// screech.Processor tick, after ProcessModules.
func (g *Line) Update() error {
	high := g.pb.Get(g.signal) >= g.threshold
	if high == g.state {
		return nil
	}

	g.state = high

	value := 0
	if high {
		value = 1
	}

	if err := g.line.SetValue(value); err != nil {
		return fmt.Errorf("gatewriter: set line value: %w", err)
	}

	return nil
}

// Close releases the underlying GPIO line request.
func (g *Line) Close() error {
	if err := g.line.Close(); err != nil {
		return fmt.Errorf("gatewriter: close line: %w", err)
	}

	return nil
}
