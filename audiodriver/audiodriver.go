// Package audiodriver drives a screech.Processor from a live PortAudio
// callback: one Patchbay tick per output frame, with the final mixed
// sample read back out of a single designated output Signal.
//
// It is a thin wrapper that does the minimum needed to get samples in
// or out and otherwise gets out of the way.
package audiodriver

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/doismellburning/screech"
)

// Stream owns a running PortAudio output stream backed by a
// screech.Processor and screech.Patchbay. Every invocation of the
// PortAudio callback advances the patchbay by exactly one tick per
// output frame.
type Stream struct {
	pb     *screech.Patchbay
	proc   *screech.Processor
	output screech.Signal

	stream *portaudio.Stream
}

// Open starts a mono output stream at sampleRate, running proc once per
// output frame and writing the value of output into the device buffer
// after each tick.
func Open(pb *screech.Patchbay, proc *screech.Processor, output screech.Signal, sampleRate float64, framesPerBuffer int) (*Stream, error) {
	s := &Stream{pb: pb, proc: proc, output: output}

	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, framesPerBuffer, s.callback)
	if err != nil {
		return nil, fmt.Errorf("audiodriver: open default stream: %w", err)
	}

	s.stream = stream

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("audiodriver: start stream: %w", err)
	}

	return s, nil
}

// callback is PortAudio's per-buffer entry point: it never allocates,
// matching the no-heap-on-the-hot-path contract screech.Processor gives
// ProcessModules.
func (s *Stream) callback(out []float32) {
	for i := range out {
		s.proc.ProcessModules(s.pb)
		out[i] = s.pb.Get(s.output)
	}
}

// Close stops and releases the underlying PortAudio stream.
func (s *Stream) Close() error {
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("audiodriver: stop stream: %w", err)
	}

	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("audiodriver: close stream: %w", err)
	}

	return nil
}

// Initialize must be called once before any Open call, and Terminate
// once at shutdown, per PortAudio's own lifecycle contract.
func Initialize() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audiodriver: initialize: %w", err)
	}

	return nil
}

// Terminate releases PortAudio's global state.
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("audiodriver: terminate: %w", err)
	}

	return nil
}
