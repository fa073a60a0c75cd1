package screech

// signalKind distinguishes the three ways a Signal can resolve to a
// sample value.
type signalKind uint8

const (
	signalNone signalKind = iota
	signalFixed
	signalFromPoint
)

// Signal is a read-side reference to a sample value: either a patch
// point written by some module, a fixed constant, or silence.
//
// A Signal is a small value type, copying it is cheap and unbounded;
// any number of modules may hold the same Signal and read it every
// tick. It carries no write capability; only a [PatchPoint] can write.
type Signal struct {
	kind  signalKind
	index int
	value float32
}

// FixedSignal returns a Signal that always reads as value, regardless
// of patchbay state. Useful for constant parameters that don't warrant
// a patch point of their own.
func FixedSignal(value float32) Signal {
	return Signal{kind: signalFixed, value: value}
}

// NoSignal returns a Signal that always reads as zero: silence, or an
// input left deliberately unconnected.
func NoSignal() Signal {
	return Signal{kind: signalNone}
}
