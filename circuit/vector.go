package circuit

// Vector is the set of PadStates for one stimulus run: the entry point
// for per-tick propagation and for horizon tracing. Ordering — all inputs
// first, then all outputs — is an observable contract relied on by
// rendering and by the tick walk below (outputs must sample after inputs
// have propagated).
type Vector struct {
	id        string
	padStates []*PadState
	byPad     map[string]*PadState
}

// NewVector creates an empty Vector. Use AddPadState to populate it in
// input-then-output order.
func NewVector(id string) *Vector {
	return &Vector{id: id, byPad: make(map[string]*PadState)}
}

// ID returns the vector's identifier.
func (vec *Vector) ID() string { return vec.id }

// AddPadState appends a PadState. Callers are responsible for adding all
// input pad-states before any output pad-state, per the Vector ordering
// contract.
func (vec *Vector) AddPadState(ps *PadState) {
	vec.padStates = append(vec.padStates, ps)
	vec.byPad[ps.padID] = ps
}

// PadState looks up the pad-state linked to the given pad id.
func (vec *Vector) PadState(padID string) (*PadState, bool) {
	ps, ok := vec.byPad[padID]

	return ps, ok
}

// PadStates returns the pad-states in stored (input-then-output) order.
// Callers must not mutate the returned slice.
func (vec *Vector) PadStates() []*PadState { return vec.padStates }

// Tick drives every pad-state's tick(t) in stored order — inputs first so
// outputs observe the post-propagation state — calling reset(t) right
// after each pad-state's tick to clear the visitation guards it set. A
// gate's ticked guard only blocks a second tick(t) within the same
// pad-state's traversal; clearing it immediately afterward lets the next
// input pad-state's propagation reach the same gate this tick and have
// it actually re-evaluate. The gate's own lastTicked-driven new-tick/
// same-tick rule (not the reset timing) is what still guarantees exactly
// one pipeline shift per gate per tick regardless of how many input
// pad-states reach it.
func (vec *Vector) Tick(c *Circuit, t int) error {
	for _, ps := range vec.padStates {
		if err := ps.tick(c, t); err != nil {
			return err
		}
		if err := ps.reset(c, t); err != nil {
			return err
		}
	}

	return nil
}

// Trace returns the simulation horizon: the longest input schedule term
// plus the longest combinational delay path from any input pad-state to
// any output pad-state. Guard flags are cleared across the whole circuit
// before each pad-state's branch, so every branch is explored
// independently: a shared downstream gate left marked traced by one
// input's exploration would otherwise short-circuit a second input whose
// path accumulates more delay before reaching it.
//
// The "longest input schedule" term is the larger of two counts: the
// total number of AddState transitions recorded across the vector's input
// pad-states, and the last scheduled tick index of any input pad-state.
// The horizon only needs to stretch far enough to cover each authored
// transition plus the combinational settle time after the last one; the
// last-index term guarantees a late transition is reached, while using
// the index rather than the back-filled array length keeps the horizon
// from over-counting one idle held-value tick.
func (vec *Vector) Trace(c *Circuit) (int, error) {
	longestSchedule := 0
	lastIndex := 0
	for _, ps := range vec.padStates {
		if ps.padKind == InPad {
			longestSchedule += ps.transitions
			if n := len(ps.schedule) - 1; n > lastIndex {
				lastIndex = n
			}
		}
	}
	if lastIndex > longestSchedule {
		longestSchedule = lastIndex
	}

	best := 0
	for _, ps := range vec.padStates {
		c.clearTraceFlags()
		v, err := ps.trace(c)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
	}

	return longestSchedule + best, nil
}
