package circuit

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/ternsim/ternary"
)

// Circuit is the owning container of all nets, gates, and pads: an
// id-indexed arena. Every Net/Gate/Pad cross-reference is a nodeRef
// resolved through this arena; nothing holds an owning pointer to
// anything else, which keeps the gate↔net reference cycle out of the
// ownership structure. The graph is constructed before simulation begins
// and is not mutated during Run.
type Circuit struct {
	id string

	nets     map[string]*Net
	netOrder []string

	gates     map[string]*Gate
	gateOrder []string

	inPads     map[string]*Pad
	inPadOrder []string

	outPads     map[string]*Pad
	outPadOrder []string

	vector      *Vector
	logicalTime int

	debug io.Writer
}

// CircuitOption configures optional behavior on a Circuit at construction.
type CircuitOption func(*Circuit)

// WithDebugWriter directs a per-evaluation trace of the simulation (one
// line per gate shift, one per completed tick) to w. Debug output is
// per-Circuit state; two circuits in one process can trace to different
// writers or not at all.
func WithDebugWriter(w io.Writer) CircuitOption {
	return func(c *Circuit) { c.debug = w }
}

// NewCircuit creates an empty Circuit with the given id.
func NewCircuit(id string, opts ...CircuitOption) *Circuit {
	c := &Circuit{
		id:      id,
		nets:    make(map[string]*Net),
		gates:   make(map[string]*Gate),
		inPads:  make(map[string]*Pad),
		outPads: make(map[string]*Pad),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// debugf writes one formatted line to the circuit's debug writer, if any.
func (c *Circuit) debugf(format string, args ...any) {
	if c.debug == nil {
		return
	}
	fmt.Fprintf(c.debug, format+"\n", args...)
}

// ID returns the circuit's identifier.
func (c *Circuit) ID() string { return c.id }

// ensureNet returns the net with the given id, creating it lazily with a
// default Unknown value on first reference, so netlist statements can
// name a net before anything drives it.
func (c *Circuit) ensureNet(id string) (*Net, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if n, ok := c.nets[id]; ok {
		return n, nil
	}
	n := newNet(id)
	c.nets[id] = n
	c.netOrder = append(c.netOrder, id)

	return n, nil
}

// AddGate constructs a gate of the given kind, delay, ordered input net
// ids, and output net id, auto-creating any referenced net that does not
// yet exist. Returns ErrMissingID for an empty gate/net id, ErrInvalidDelay
// for delay <= 0, ErrElementNotFound if a gate with this id already exists,
// or ErrNullReference if the output net already has a driver.
func (c *Circuit) AddGate(id string, kind GateKind, delay int, inputNetIDs []string, outputNetID string) error {
	if id == "" {
		return ErrMissingID
	}
	if _, exists := c.gates[id]; exists {
		return fmt.Errorf("circuit: gate %q: already exists: %w", id, ErrElementNotFound)
	}
	if delay <= 0 {
		return ErrInvalidDelay
	}
	if outputNetID == "" {
		return ErrMissingID
	}
	for _, nid := range inputNetIDs {
		if nid == "" {
			return ErrMissingID
		}
	}

	outNet, err := c.ensureNet(outputNetID)
	if err != nil {
		return err
	}
	if outNet.driver.kind != refNone {
		return fmt.Errorf("circuit: net %q: already driven: %w", outputNetID, ErrNullReference)
	}

	for _, nid := range inputNetIDs {
		if _, err := c.ensureNet(nid); err != nil {
			return err
		}
	}

	g := newGate(id, kind, delay, inputNetIDs, outputNetID)
	outNet.driver = nodeRef{kind: refGate, id: id}
	for _, nid := range inputNetIDs {
		c.nets[nid].addReader(nodeRef{kind: refGate, id: id})
	}

	c.gates[id] = g
	c.gateOrder = append(c.gateOrder, id)

	return nil
}

// AddInPad creates an input pad driving the given net (auto-created if
// absent). Returns ErrMissingID for an empty id, ErrElementNotFound if the
// pad id is already used, or ErrNullReference if the net already has a
// driver.
func (c *Circuit) AddInPad(padID, netID string) error {
	if padID == "" || netID == "" {
		return ErrMissingID
	}
	if _, exists := c.inPads[padID]; exists {
		return fmt.Errorf("circuit: pad %q: already exists: %w", padID, ErrElementNotFound)
	}
	n, err := c.ensureNet(netID)
	if err != nil {
		return err
	}
	if n.driver.kind != refNone {
		return fmt.Errorf("circuit: net %q: already driven: %w", netID, ErrNullReference)
	}

	n.driver = nodeRef{kind: refInPad, id: padID}
	c.inPads[padID] = newPad(padID, InPad, netID)
	c.inPadOrder = append(c.inPadOrder, padID)

	return nil
}

// AddOutPad creates an output pad reading the given net (auto-created if
// absent). Returns ErrMissingID for an empty id, or ErrElementNotFound if
// the pad id is already used.
func (c *Circuit) AddOutPad(padID, netID string) error {
	if padID == "" || netID == "" {
		return ErrMissingID
	}
	if _, exists := c.outPads[padID]; exists {
		return fmt.Errorf("circuit: pad %q: already exists: %w", padID, ErrElementNotFound)
	}
	n, err := c.ensureNet(netID)
	if err != nil {
		return err
	}

	n.addReader(nodeRef{kind: refOutPad, id: padID})
	c.outPads[padID] = newPad(padID, OutPad, netID)
	c.outPadOrder = append(c.outPadOrder, padID)

	return nil
}

// Net looks up a net by id.
func (c *Circuit) Net(id string) (*Net, bool) { n, ok := c.nets[id]; return n, ok }

// Gate looks up a gate by id.
func (c *Circuit) Gate(id string) (*Gate, bool) { g, ok := c.gates[id]; return g, ok }

// InPad looks up an input pad by id.
func (c *Circuit) InPad(id string) (*Pad, bool) { p, ok := c.inPads[id]; return p, ok }

// OutPad looks up an output pad by id.
func (c *Circuit) OutPad(id string) (*Pad, bool) { p, ok := c.outPads[id]; return p, ok }

// NetIDs returns every net id, sorted, so inspection never depends on map
// iteration order.
func (c *Circuit) NetIDs() []string { return sortedKeys(c.nets) }

// GateIDs returns every gate id, sorted.
func (c *Circuit) GateIDs() []string { return sortedKeys(c.gates) }

// InPadIDs returns input pad ids in insertion order (netlist order),
// matching the Circuit struct's documented `in-pads: ordered` field.
func (c *Circuit) InPadIDs() []string { return append([]string(nil), c.inPadOrder...) }

// OutPadIDs returns output pad ids in insertion order.
func (c *Circuit) OutPadIDs() []string { return append([]string(nil), c.outPadOrder...) }

func sortedKeys[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AttachVector binds the Vector this Circuit will simulate against.
func (c *Circuit) AttachVector(v *Vector) { c.vector = v }

// Vector returns the attached Vector, or nil if none is attached.
func (c *Circuit) Vector() *Vector { return c.vector }

// NewInputPadState creates a PadState bound to an existing input pad.
// Returns ErrSchemaMismatch if padID names no input pad on this circuit.
func (c *Circuit) NewInputPadState(id, padID string, def ternary.Value) (*PadState, error) {
	if _, ok := c.inPads[padID]; !ok {
		return nil, fmt.Errorf("circuit: input pad %q: %w", padID, ErrSchemaMismatch)
	}

	return newPadState(id, padID, InPad, def), nil
}

// NewOutputPadState creates a PadState bound to an existing output pad.
// Returns ErrSchemaMismatch if padID names no output pad on this circuit.
func (c *Circuit) NewOutputPadState(id, padID string, def ternary.Value) (*PadState, error) {
	if _, ok := c.outPads[padID]; !ok {
		return nil, fmt.Errorf("circuit: output pad %q: %w", padID, ErrSchemaMismatch)
	}

	return newPadState(id, padID, OutPad, def), nil
}

// LogicalTime returns the last tick index completed by Run.
func (c *Circuit) LogicalTime() int { return c.logicalTime }

// Trace computes the simulation horizon for the attached Vector: its
// stimulus term (see Vector.Trace) plus the longest combinational delay
// path.
func (c *Circuit) Trace() (int, error) {
	if c.vector == nil {
		return 0, fmt.Errorf("circuit: %w: no vector attached", ErrNullReference)
	}

	return c.vector.Trace(c)
}

// Run loops ticks 0..horizon inclusive, calling Vector.Tick(t) each
// iteration. Requires horizon >= 1 and a vector already attached. ctx is
// checked once per tick for cancellation; the traversal itself is
// synchronous and uninterruptible mid-tick.
func (c *Circuit) Run(ctx context.Context, horizon int) error {
	if horizon < 1 {
		return fmt.Errorf("circuit: horizon %d: %w", horizon, ErrNegativeRange)
	}
	if c.vector == nil {
		return fmt.Errorf("circuit: %w: no vector attached", ErrNullReference)
	}

	for t := 0; t <= horizon; t++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := c.vector.Tick(c, t); err != nil {
			return fmt.Errorf("circuit: tick %d: %w", t, err)
		}
		c.logicalTime = t
		c.debugf("t=%d done", t)
	}

	return nil
}

// clearTraceFlags clears every gate's ticked/resetPending/traced guards
// directly, bypassing the resetPending-guarded recursive reset traversal.
// Vector.Trace calls this before exploring each pad-state's branch so the
// branches are independent of each other and of any flags left over from
// a prior Run.
func (c *Circuit) clearTraceFlags() {
	for _, g := range c.gates {
		g.ticked = false
		g.resetPending = false
		g.traced = false
	}
}

// tickRef dispatches tick(t) to the gate or output pad named by r.
func (c *Circuit) tickRef(r nodeRef, t int) error {
	switch r.kind {
	case refGate:
		g, ok := c.gates[r.id]
		if !ok {
			return fmt.Errorf("circuit: gate %q: %w", r.id, ErrElementNotFound)
		}

		return g.tick(c, t)
	case refOutPad:
		p, ok := c.outPads[r.id]
		if !ok {
			return fmt.Errorf("circuit: pad %q: %w", r.id, ErrElementNotFound)
		}

		return p.tick(c, t)
	default:
		return fmt.Errorf("circuit: %w: unresolvable reader reference", ErrNullReference)
	}
}

// resetRef dispatches reset(t) to the gate or output pad named by r.
func (c *Circuit) resetRef(r nodeRef, t int) error {
	switch r.kind {
	case refGate:
		g, ok := c.gates[r.id]
		if !ok {
			return fmt.Errorf("circuit: gate %q: %w", r.id, ErrElementNotFound)
		}

		return g.reset(c, t)
	case refOutPad:
		p, ok := c.outPads[r.id]
		if !ok {
			return fmt.Errorf("circuit: pad %q: %w", r.id, ErrElementNotFound)
		}

		return p.reset(c, t)
	default:
		return fmt.Errorf("circuit: %w: unresolvable reader reference", ErrNullReference)
	}
}

// traceRef dispatches trace(best) to the gate or output pad named by r.
func (c *Circuit) traceRef(r nodeRef, best int) (int, error) {
	switch r.kind {
	case refGate:
		g, ok := c.gates[r.id]
		if !ok {
			return 0, fmt.Errorf("circuit: gate %q: %w", r.id, ErrElementNotFound)
		}

		return g.trace(c, best)
	case refOutPad:
		p, ok := c.outPads[r.id]
		if !ok {
			return 0, fmt.Errorf("circuit: pad %q: %w", r.id, ErrElementNotFound)
		}

		return p.trace(c, best)
	default:
		return 0, fmt.Errorf("circuit: %w: unresolvable reader reference", ErrNullReference)
	}
}
