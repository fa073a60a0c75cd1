package screech

// Patchbay is a fixed-capacity pool of connection points, each holding
// one float32 sample and a freshness mark for the current tick.
//
// A Patchbay is built once, up front, with [NewPatchbay]. After that,
// every operation on it ([Patchbay.Get], [Patchbay.Set],
// [Patchbay.Check], [Patchbay.ClearMarks]) touches only its
// already-allocated slices and never grows them; [Patchbay.Point] and
// [Patchbay.Release] are the only operations that mutate the free pool,
// and are not meant to be called from the sampling hot path.
type Patchbay struct {
	buffer    []float32
	fresh     []bool
	allocated []bool
	log       Logger
}

// PatchPoint is the unique write handle for one patchbay slot. It is
// minted by [Patchbay.Point] and is only ever valid for the patchbay
// that minted it.
//
// Go has no move-only types, so uniqueness of the write handle ("at
// most one writer per patch point") is not enforced by the compiler
// the way it would be in a language with ownership. Instead a claimed
// bit on the point itself is cleared by [Patchbay.Release]; releasing
// an already-released point, or writing through one, is a programmer
// error and panics rather than corrupting another point's slot.
type PatchPoint struct {
	index   int
	claimed bool
}

// NewPatchbay constructs an empty patchbay of the given capacity: every
// sample starts at 0.0, no point is fresh, and every slot is free.
// Capacity is fixed for the lifetime of the patchbay.
func NewPatchbay(capacity int, opts ...Option) *Patchbay {
	cfg := newConfig(opts)

	return &Patchbay{
		buffer:    make([]float32, capacity),
		fresh:     make([]bool, capacity),
		allocated: make([]bool, capacity),
		log:       cfg.logger,
	}
}

// Capacity returns the total number of patch-point slots, P.
func (pb *Patchbay) Capacity() int {
	return len(pb.buffer)
}

// Point allocates a fresh patch point. It returns (nil, false) when the
// pool is exhausted, every slot already has a live write handle.
func (pb *Patchbay) Point() (*PatchPoint, bool) {
	for i, taken := range pb.allocated {
		if !taken {
			pb.allocated[i] = true

			return &PatchPoint{index: i, claimed: true}, true
		}
	}

	pb.log.Debugf("screech: patchbay exhausted, all %d points in use", len(pb.buffer))

	return nil, false
}

// Release returns point's slot to the free pool. The sample value left
// behind is not cleared; a subsequent Point() call may reuse the slot
// and will overwrite it on the next Set. Releasing a point twice panics.
func (pb *Patchbay) Release(point *PatchPoint) {
	if !point.claimed {
		panic("screech: patch point released twice")
	}

	point.claimed = false
	pb.allocated[point.index] = false
}

// Signal derives a freely-copyable read reference to point's slot. It
// may be called any number of times and outlives the PatchPoint itself;
// a Signal is just an index, not a capability.
func (p *PatchPoint) Signal() Signal {
	return Signal{kind: signalFromPoint, index: p.index}
}

// Get reads the current value of s: the patch point's sample if s
// refers to one, a constant for [FixedSignal], or zero for
// [NoSignal]. Get never fails: every Signal in existence was minted
// by a Patchbay operation and its index is always in range.
func (pb *Patchbay) Get(s Signal) float32 {
	switch s.kind {
	case signalFromPoint:
		return pb.buffer[s.index]
	case signalFixed:
		return s.value
	default:
		return 0
	}
}

// Set writes value to point's slot and marks it fresh for the
// remainder of the current tick.
func (pb *Patchbay) Set(point *PatchPoint, value float32) {
	if !point.claimed {
		panic("screech: write through a released patch point")
	}

	pb.buffer[point.index] = value
	pb.fresh[point.index] = true
}

// Check reports whether s's current value was computed during this
// tick. [FixedSignal] and [NoSignal] are always fresh; a
// point-backed signal is fresh iff that point has been [Patchbay.Set]
// since the last [Patchbay.ClearMarks].
func (pb *Patchbay) Check(s Signal) bool {
	if s.kind != signalFromPoint {
		return true
	}

	return pb.fresh[s.index]
}

// ClearMarks clears every point's freshness mark without touching the
// sample buffer. Feedback paths intentionally read the previous tick's
// value until their producer runs again.
func (pb *Patchbay) ClearMarks() {
	for i := range pb.fresh {
		pb.fresh[i] = false
	}
}
