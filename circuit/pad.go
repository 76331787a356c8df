package circuit

import (
	"fmt"

	"github.com/katalvlaran/ternsim/ternary"
)

// PadKind distinguishes an input boundary terminal from an output one.
type PadKind int8

const (
	InPad PadKind = iota
	OutPad
)

// String renders "IN" or "OUT".
func (k PadKind) String() string {
	if k == InPad {
		return "IN"
	}

	return "OUT"
}

// Pad is a boundary terminal bridging a PadState and a Net. Like Gate, it
// carries ticked/resetPending visitation guards: an output pad is a reader
// of its net, so an unguarded reset would bounce between the pad and the
// net forever (pad.reset forwards to the net, the net forwards to its
// readers, and the pad is one of them).
type Pad struct {
	id      string
	kind    PadKind
	current ternary.Value
	net     string

	ticked       bool
	resetPending bool
}

func newPad(id string, kind PadKind, net string) *Pad {
	return &Pad{id: id, kind: kind, current: ternary.Unknown, net: net}
}

// ID returns the pad's identifier.
func (p *Pad) ID() string { return p.id }

// Kind reports whether this is an input or output pad.
func (p *Pad) Kind() PadKind { return p.kind }

// Current returns the pad's last observed value.
func (p *Pad) Current() ternary.Value { return p.current }

func (p *Pad) setCurrent(v ternary.Value) { p.current = v }

// tick: an input pad copies its current value onto its net and forwards
// tick(t) to the net; an output pad samples its net's current value and is
// a traversal terminal (no downstream forwarding).
func (p *Pad) tick(c *Circuit, t int) error {
	if p.ticked {
		return nil
	}

	n, ok := c.nets[p.net]
	if !ok {
		return fmt.Errorf("circuit: pad %q: %w", p.id, ErrNullReference)
	}

	p.ticked = true
	p.resetPending = false

	if p.kind == InPad {
		n.setCurrent(p.current)

		return n.tick(c, t)
	}

	p.current = n.Current()

	return nil
}

// reset forwards reset(t) to the pad's net, for both pad kinds. The
// resetPending guard is set before the net is entered so the net's
// forward-to-readers walk cannot re-enter this pad.
func (p *Pad) reset(c *Circuit, t int) error {
	if p.resetPending {
		return nil
	}
	p.resetPending = true
	p.ticked = false

	n, ok := c.nets[p.net]
	if !ok {
		return fmt.Errorf("circuit: pad %q: %w", p.id, ErrNullReference)
	}

	return n.reset(c, t)
}

// trace: an input pad forwards to its net; an output pad is a terminal and
// returns best unchanged.
func (p *Pad) trace(c *Circuit, best int) (int, error) {
	if p.kind == OutPad {
		return best, nil
	}

	n, ok := c.nets[p.net]
	if !ok {
		return 0, fmt.Errorf("circuit: pad %q: %w", p.id, ErrNullReference)
	}

	return n.trace(c, best)
}
