package screech

// Processor owns a fixed-capacity array of modules and drives one
// sample tick at a time: [Processor.ProcessModules] calls every live
// module's Process exactly once, in an order it discovers from runtime
// readiness rather than any statically declared dependency list, then
// caches that order for the next tick.
//
// A Processor is built once with [NewProcessor] or [EmptyProcessor];
// [Processor.ProcessModules] never allocates.
type Processor struct {
	sampleRate int

	modules  []Module // storage slots; nil means empty
	idToSlot []int    // external id -> storage slot, -1 means unbound

	orderValid bool

	// Scratch space for order-and-process, pre-allocated to capacity so
	// re-deriving the order never allocates either.
	processed  []bool
	newSlotOf  []int
	compaction []Module

	log Logger
}

const noSlot = -1

// NewProcessor constructs a Processor whose slot array is prefilled
// from modules. Empty slots are represented by a nil entry in the
// slice. The order cache starts invalid: the first
// [Processor.ProcessModules] call both discovers the order and
// produces output.
func NewProcessor(sampleRate int, modules []Module, opts ...Option) *Processor {
	cfg := newConfig(opts)

	n := len(modules)
	p := &Processor{
		sampleRate: sampleRate,
		modules:    append([]Module(nil), modules...),
		idToSlot:   make([]int, n),
		processed:  make([]bool, n),
		newSlotOf:  make([]int, n),
		compaction: make([]Module, n),
		log:        cfg.logger,
	}

	for i := range p.idToSlot {
		if p.modules[i] != nil {
			p.idToSlot[i] = i
		} else {
			p.idToSlot[i] = noSlot
		}
	}

	return p
}

// EmptyProcessor constructs a Processor with capacity slots, all empty.
func EmptyProcessor(sampleRate int, capacity int, opts ...Option) *Processor {
	return NewProcessor(sampleRate, make([]Module, capacity), opts...)
}

// Capacity returns the module-array capacity, N.
func (p *Processor) Capacity() int {
	return len(p.modules)
}

// InsertModule places m in the first free slot and binds it to the
// first free external id, invalidating the order cache. It returns
// (0, false) when either the module array or the id table has no room
// left.
func (p *Processor) InsertModule(m Module) (int, bool) {
	for id, slot := range p.idToSlot {
		if slot != noSlot {
			continue
		}

		for slotIdx, existing := range p.modules {
			if existing != nil {
				continue
			}

			p.modules[slotIdx] = m
			p.idToSlot[id] = slotIdx
			p.orderValid = false

			return id, true
		}

		// Every module slot is occupied despite a free id: capacity
		// exhausted.
		p.log.Debugf("screech: processor exhausted, all %d module slots in use", len(p.modules))

		return 0, false
	}

	p.log.Debugf("screech: processor exhausted, all %d external ids in use", len(p.idToSlot))

	return 0, false
}

// ReplaceModule overwrites the module bound to id if id is already
// bound, or binds id to the first free slot otherwise. Either way the
// order cache is invalidated. It is a no-op (other than cache
// invalidation) if id is out of range or no free slot exists for an
// unbound id.
func (p *Processor) ReplaceModule(m Module, id int) {
	p.orderValid = false

	if id < 0 || id >= len(p.idToSlot) {
		return
	}

	if slot := p.idToSlot[id]; slot != noSlot {
		p.modules[slot] = m

		return
	}

	for slotIdx, existing := range p.modules {
		if existing == nil {
			p.modules[slotIdx] = m
			p.idToSlot[id] = slotIdx

			return
		}
	}
}

// GetModule resolves an external id to its module, or (nil, false) if
// the id is unbound or out of range.
func (p *Processor) GetModule(id int) (Module, bool) {
	if id < 0 || id >= len(p.idToSlot) {
		return nil, false
	}

	slot := p.idToSlot[id]
	if slot == noSlot {
		return nil, false
	}

	return p.modules[slot], true
}

// GetModuleMut resolves an external id to its module, identically to
// [Processor.GetModule]. It exists as a distinct name only for parity
// with the read/mutate split languages with a borrow checker draw here.
// In Go a returned Module (almost always a pointer receiver) is already
// mutable through its own methods, so there is no separate "mut" access
// path to provide.
func (p *Processor) GetModuleMut(id int) (Module, bool) {
	return p.GetModule(id)
}

// TakeModules moves every module out of the processor, leaving it
// empty, and unbinds every external id. The caller receives the raw
// slot array (nil entries for empty slots).
func (p *Processor) TakeModules() []Module {
	out := p.modules
	p.modules = make([]Module, len(p.modules))

	for i := range p.idToSlot {
		p.idToSlot[i] = noSlot
	}

	p.orderValid = false

	return out
}

// ClearCache marks the cached order invalid. Use this after mutating
// connectivity through means the processor can't observe itself (the
// patchbay wiring a module reads, rather than the module set).
func (p *Processor) ClearCache() {
	p.orderValid = false
}

// ProcessModules advances every occupied slot exactly once. With a
// valid order cache this is a single straight-line pass with no
// readiness checks; otherwise it re-derives the order and produces
// this tick's output in the same pass (see orderAndProcess).
func (p *Processor) ProcessModules(pb *Patchbay) {
	if !p.orderValid {
		p.orderAndProcess(pb)

		return
	}

	pb.ClearMarks()

	for _, m := range p.modules {
		if m != nil {
			m.Process(pb, p.sampleRate)
		}
	}
}

// orderAndProcess both computes a fresh slot order and performs one
// sample tick. Modules are run in three passes:
//
//  1. A greedy pass, repeated to a fixed point: any not-yet-processed
//     module whose ReadyChecker reports ready (or which has none) is
//     processed and appended to the new order, in ascending id order
//     within each scan, the one guaranteed tie-break.
//  2. A residual pass for whatever is left: each such module is part of
//     a feedback cycle (its readiness never became true because some
//     input's producer is scheduled after it). Every residual module is
//     processed unconditionally, in id order, reading last tick's value
//     from whichever point closes its cycle.
//  3. Compaction: modules physically move to their new slots and
//     idToSlot is rewritten so external ids stay valid.
func (p *Processor) orderAndProcess(pb *Patchbay) {
	pb.ClearMarks()

	n := len(p.modules)
	nextSlot := 0

	for i := range p.processed {
		p.processed[i] = false
		p.newSlotOf[i] = noSlot
	}

	for {
		progressed := false

		for id := 0; id < n; id++ {
			if p.processed[id] {
				continue
			}

			slot := p.idToSlot[id]
			if slot == noSlot {
				continue
			}

			m := p.modules[slot]
			if m == nil {
				continue
			}

			if !isReady(m, pb) {
				continue
			}

			m.Process(pb, p.sampleRate)
			p.processed[id] = true
			p.newSlotOf[id] = nextSlot
			nextSlot++
			progressed = true
		}

		if !progressed {
			break
		}
	}

	for id := 0; id < n; id++ {
		if p.processed[id] {
			continue
		}

		slot := p.idToSlot[id]
		if slot == noSlot {
			continue
		}

		m := p.modules[slot]
		if m == nil {
			continue
		}

		m.Process(pb, p.sampleRate)
		p.newSlotOf[id] = nextSlot
		nextSlot++
	}

	for i := range p.compaction {
		p.compaction[i] = nil
	}

	for id := 0; id < n; id++ {
		slot := p.idToSlot[id]
		if slot == noSlot {
			continue
		}

		newSlot := p.newSlotOf[id]
		if newSlot == noSlot {
			newSlot = slot
		}

		p.compaction[newSlot] = p.modules[slot]
		p.idToSlot[id] = newSlot
	}

	p.modules, p.compaction = p.compaction, p.modules

	p.orderValid = true

	p.log.Debugf("screech: re-derived processing order for %d modules", n)
}
