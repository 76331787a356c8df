package circuit

import (
	"fmt"

	"github.com/katalvlaran/ternsim/ternary"
)

// PadState is a per-pad timed state record: for an input pad, the
// stimulus program to drive; for an output pad, the recorded waveform
// history.
type PadState struct {
	id          string
	padID       string
	padKind     PadKind
	def         ternary.Value
	schedule    []ternary.Value
	transitions int
}

func newPadState(id, padID string, kind PadKind, def ternary.Value) *PadState {
	return &PadState{id: id, padID: padID, padKind: kind, def: def}
}

// ID returns the pad-state's identifier.
func (ps *PadState) ID() string { return ps.id }

// PadID returns the id of the Pad this state is linked to.
func (ps *PadState) PadID() string { return ps.padID }

// Kind reports whether this is an input (stimulus) or output (recorded)
// pad-state.
func (ps *PadState) Kind() PadKind { return ps.padKind }

// Schedule returns the recorded/scheduled waveform. Callers must not
// mutate the returned slice.
func (ps *PadState) Schedule() []ternary.Value { return ps.schedule }

// AddState places v at indices [t, t+rng) in the schedule. If t lies
// beyond the current length, the gap is back-filled with the last
// recorded value (or def if the schedule is still empty). rng < 1 is
// treated as 1. Later calls for overlapping ranges overwrite earlier ones
// (last-wins) for same-pad,
// same-time stimulus entries.
//
// Each call counts as exactly one stimulus transition, tallied in
// transitions regardless of rng — this is the unit Vector.Trace sums
// across a vector's input pad-states for its longest-input-schedule term
// (see the doc comment on Vector.Trace for how that sum is combined with
// the last scheduled index).
func (ps *PadState) AddState(v ternary.Value, t int, rng int) {
	if rng < 1 {
		rng = 1
	}
	ps.transitions++

	fill := ps.def
	if len(ps.schedule) > 0 {
		fill = ps.schedule[len(ps.schedule)-1]
	}
	for len(ps.schedule) < t {
		ps.schedule = append(ps.schedule, fill)
	}

	end := t + rng
	for i := t; i < end; i++ {
		if i < len(ps.schedule) {
			ps.schedule[i] = v
		} else {
			ps.schedule = append(ps.schedule, v)
		}
	}
}

// ValueAt returns the held value this pad-state would show at tick t:
// schedule[min(t, len-1)], or the pad-state's default if nothing has ever
// been recorded. Unlike valueAt (used internally by the tick engine, which
// must distinguish "never written" as an error), this is a total function
// for renderers that want a value at every column regardless of how short
// the recorded/scheduled history is.
func (ps *PadState) ValueAt(t int) ternary.Value {
	if len(ps.schedule) == 0 {
		return ps.def
	}

	idx := t
	if idx > len(ps.schedule)-1 {
		idx = len(ps.schedule) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return ps.schedule[idx]
}

// valueAt implements the input-pad held-value read: schedule[min(t,
// len-1)], i.e. the schedule is extended indefinitely by holding its last
// entry. An untouched (empty) schedule is an EmptyStateTable error.
func (ps *PadState) valueAt(t int) (ternary.Value, error) {
	if len(ps.schedule) == 0 {
		return ternary.Unknown, fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrEmptyStateTable)
	}

	idx := t
	if idx > len(ps.schedule)-1 {
		idx = len(ps.schedule) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return ps.schedule[idx], nil
}

// record writes v at index t of the schedule, extending with the previous
// tail value if t exceeds the current length, or overwriting in place
// otherwise.
func (ps *PadState) record(t int, v ternary.Value) {
	fill := ps.def
	if len(ps.schedule) > 0 {
		fill = ps.schedule[len(ps.schedule)-1]
	}
	for len(ps.schedule) < t {
		ps.schedule = append(ps.schedule, fill)
	}

	if t < len(ps.schedule) {
		ps.schedule[t] = v
	} else {
		ps.schedule = append(ps.schedule, v)
	}
}

// tick drives an input pad from schedule[t] (held at the end), or samples
// an output pad and records the observed value at index t.
func (ps *PadState) tick(c *Circuit, t int) error {
	switch ps.padKind {
	case InPad:
		pad, ok := c.inPads[ps.padID]
		if !ok {
			return fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrNullReference)
		}
		v, err := ps.valueAt(t)
		if err != nil {
			return err
		}
		pad.setCurrent(v)

		return pad.tick(c, t)
	default:
		pad, ok := c.outPads[ps.padID]
		if !ok {
			return fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrNullReference)
		}
		if err := pad.tick(c, t); err != nil {
			return err
		}
		ps.record(t, pad.Current())

		return nil
	}
}

// reset forwards reset(t) through this pad-state's linked pad.
func (ps *PadState) reset(c *Circuit, t int) error {
	switch ps.padKind {
	case InPad:
		pad, ok := c.inPads[ps.padID]
		if !ok {
			return fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrNullReference)
		}

		return pad.reset(c, t)
	default:
		pad, ok := c.outPads[ps.padID]
		if !ok {
			return fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrNullReference)
		}

		return pad.reset(c, t)
	}
}

// trace: an input pad-state forwards to its pad (which forwards into the
// net graph); an output pad-state is a terminal and contributes 0.
func (ps *PadState) trace(c *Circuit) (int, error) {
	if ps.padKind == OutPad {
		return 0, nil
	}

	pad, ok := c.inPads[ps.padID]
	if !ok {
		return 0, fmt.Errorf("circuit: padstate %q: %w", ps.id, ErrNullReference)
	}

	return pad.trace(c, 0)
}
