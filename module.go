package screech

// Module is any unit that advances one sample at a time against a
// [Patchbay]: an oscillator, a mixer, an envelope, a VCA, or a composite
// that owns a nested Patchbay of its own and runs a mini [Processor]
// inside its own Process. The [Processor] never inspects a module's
// internals; it only calls Process, in an order it discovers from
// readiness rather than from any declared list of inputs.
//
// sampleRate is the processor's configured SAMPLE_RATE, passed in on
// every call so a module can translate, say, a frequency in Hz into a
// per-sample phase increment without needing to cache it itself.
//
// A minimal oscillator might look like:
//
//	type Oscillator struct {
//		output    *screech.PatchPoint
//		frequency float32
//		phase     float32
//	}
//
//	func (o *Oscillator) Process(pb *screech.Patchbay, sampleRate int) {
//		o.phase += (2.0 / float32(sampleRate)) * o.frequency
//		if o.phase >= 1.0 {
//			o.phase -= 2.0
//		}
//		pb.Set(o.output, o.phase)
//	}
type Module interface {
	Process(pb *Patchbay, sampleRate int)
}

// ReadyChecker is an optional extension to [Module]. A module with
// inputs implements it to report, without mutating anything, whether
// every signal its next Process call would consult is fresh this tick.
// This is how the [Processor] discovers dependency order without any
// module declaring a static edge list.
//
// A module with no inputs needs no ReadyChecker at all: the processor
// treats any [Module] that doesn't implement ReadyChecker as always
// ready.
//
// IsReady must check exactly the signals Process actually reads. A
// module that checks more is merely slower to schedule; one that checks
// fewer will silently read stale data from a feedback position on its
// very first tick.
type ReadyChecker interface {
	IsReady(pb *Patchbay) bool
}

func isReady(m Module, pb *Patchbay) bool {
	if rc, ok := m.(ReadyChecker); ok {
		return rc.IsReady(pb)
	}

	return true
}
