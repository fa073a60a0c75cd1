// Package screech is an embeddable real-time audio processing engine.
//
// Small self-contained sound-producing or sound-transforming units
// ("modules") are wired together through a shared [Patchbay] of named
// connection points, and a [Processor] advances every module one sample
// at a time in a dependency-correct order it discovers at runtime rather
// than one declared up front. It targets low-latency, fixed-memory
// environments: every output sample is computed in bounded time with no
// allocation once a [Patchbay] and [Processor] have been constructed.
//
// # Basic example
//
// Two oscillators and a VCA. One oscillator runs at a low frequency and
// feeds the VCA's modulator input, amplitude-modulating the other.
//
//	const sampleRate = 48000
//
//	pb := screech.NewPatchbay(8)
//	oscPoint, _ := pb.Point()
//	lfoPoint, _ := pb.Point()
//	vcaPoint, _ := pb.Point()
//	output := vcaPoint.Signal()
//
//	vca := NewVca(oscPoint.Signal(), lfoPoint.Signal(), vcaPoint)
//	osc := NewOscillator(oscPoint, 220.0)
//	lfo := NewOscillator(lfoPoint, 1.0)
//
//	proc := screech.NewProcessor(sampleRate, []screech.Module{osc, lfo, vca})
//
//	for i := 0; i < sampleRate*10; i++ {
//		proc.ProcessModules(pb)
//		buffer[i] = pb.Get(output)
//	}
//
// The library defines only the three pieces above: the patchbay, the
// module contract, and the processor that schedules modules against it.
// A library of concrete modules (oscillators, mixers, envelopes, VCAs)
// is deliberately not part of this package. Callers bring their own,
// satisfying [Module] and, optionally, [ReadyChecker].
package screech
