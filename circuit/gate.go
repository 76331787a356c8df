package circuit

import (
	"fmt"

	"github.com/katalvlaran/ternsim/ternary"
)

// GateKind identifies which ternary operator a Gate applies. Variation
// across gate "subtypes" is a single kind field indexing a table of pure
// functions (gateOps below), not a type per operator.
type GateKind int8

const (
	NotGate GateKind = iota
	AndGate
	OrGate
	NandGate
	NorGate
	XorGate
	XnorGate
)

// String renders the canonical gate-kind name.
func (k GateKind) String() string {
	switch k {
	case NotGate:
		return "NOT"
	case AndGate:
		return "AND"
	case OrGate:
		return "OR"
	case NandGate:
		return "NAND"
	case NorGate:
		return "NOR"
	case XorGate:
		return "XOR"
	case XnorGate:
		return "XNOR"
	default:
		return "UNKNOWN"
	}
}

// gateOps maps each GateKind to its pure ternary operator.
var gateOps = map[GateKind]func(...ternary.Value) ternary.Value{
	NotGate:  func(in ...ternary.Value) ternary.Value { return ternary.Not(in[0]) },
	AndGate:  ternary.And,
	OrGate:   ternary.Or,
	NandGate: ternary.Nand,
	NorGate:  ternary.Nor,
	XorGate:  ternary.Xor,
	XnorGate: ternary.Xnor,
}

// Gate is a delay-pipelined combinational element. Its pipeline is a
// shift register of length delay; see tick for the new-tick/same-tick
// shift-versus-replace rule.
type Gate struct {
	id       string
	kind     GateKind
	delay    int
	pipeline []ternary.Value

	inputs []string // ordered input net ids
	output string   // output net id

	validated    bool // arity/output checked (deferred to first evaluation)
	ticked       bool
	resetPending bool
	traced       bool
	lastTicked   int // -1 until the gate has ticked at least once
}

// newGate constructs a Gate with a pipeline pre-filled with Unknown.
// Arity and output-set validation is deferred to the first evaluation
// rather than done here, so callers can wire a gate incrementally.
func newGate(id string, kind GateKind, delay int, inputs []string, output string) *Gate {
	pipeline := make([]ternary.Value, delay)
	for i := range pipeline {
		pipeline[i] = ternary.Unknown
	}

	return &Gate{
		id:         id,
		kind:       kind,
		delay:      delay,
		pipeline:   pipeline,
		inputs:     append([]string(nil), inputs...),
		output:     output,
		lastTicked: -1,
	}
}

// ID returns the gate's identifier.
func (g *Gate) ID() string { return g.id }

// Kind returns the gate's operator kind.
func (g *Gate) Kind() GateKind { return g.kind }

// Delay returns the gate's propagation delay in ticks.
func (g *Gate) Delay() int { return g.delay }

// Inputs returns the gate's ordered input net ids. Callers must not mutate
// the returned slice.
func (g *Gate) Inputs() []string { return g.inputs }

// Output returns the gate's output net id.
func (g *Gate) Output() string { return g.output }

// validate checks NOT's exactly-one-input rule and the others' at-least-two
// rule, plus that an output net id is set. Runs once, lazily.
func (g *Gate) validate() error {
	if g.validated {
		return nil
	}
	if g.output == "" {
		return fmt.Errorf("circuit: gate %q: %w", g.id, ErrNoOutput)
	}
	if g.kind == NotGate {
		if len(g.inputs) != 1 {
			return fmt.Errorf("circuit: gate %q: NOT requires exactly one input: %w", g.id, ErrNoInputs)
		}
	} else if len(g.inputs) < 2 {
		return fmt.Errorf("circuit: gate %q: %s requires at least two inputs: %w", g.id, g.kind, ErrNoInputs)
	}
	g.validated = true

	return nil
}

// evaluate samples the gate's current input-net readings and applies its
// ternary operator.
func (g *Gate) evaluate(c *Circuit) (ternary.Value, error) {
	vals := make([]ternary.Value, len(g.inputs))
	for i, nid := range g.inputs {
		n, ok := c.nets[nid]
		if !ok {
			return ternary.Unknown, fmt.Errorf("circuit: gate %q: input net %q: %w", g.id, nid, ErrElementNotFound)
		}
		vals[i] = n.Current()
	}

	return gateOps[g.kind](vals...), nil
}

// tick evaluates the gate's delay pipeline for time t and forwards to the
// output net.
//
// The pipeline's tail (oldest entry) is written to the output net exactly
// once per tick, on the new-tick path, before the pipeline is mutated —
// this is what satisfies the invariant that "observable output value on a
// given tick equals the pipeline tail just before that tick's shift".
// A same-tick re-evaluation must not repeat this write: by the time a
// second reader reaches the gate within the same t, the new-tick path has
// already shifted the tail slot forward once, so reading it again would
// surface a value from a tick too early rather than holding steady.
//
// On a new-tick evaluation (t strictly greater than any prior tick seen by
// this gate), the newly-computed value is pushed to the pipeline head and
// the old tail is dropped (one shift). On a same-tick re-evaluation (a
// second or later reader reaching this gate within the same t — either a
// diamond fan-in or a second input pad-state's propagation), only the
// pipeline head is replaced in place — no shift, no output write — so the
// gate still produces exactly one shift and one output write for the
// whole tick.
func (g *Gate) tick(c *Circuit, t int) error {
	if g.ticked {
		return nil
	}
	if err := g.validate(); err != nil {
		return err
	}

	outNet, ok := c.nets[g.output]
	if !ok {
		return fmt.Errorf("circuit: gate %q: %w", g.id, ErrNullReference)
	}

	newVal, err := g.evaluate(c)
	if err != nil {
		return err
	}

	newTick := g.lastTicked < 0 || t > g.lastTicked
	if newTick {
		tail := g.pipeline[g.delay-1]
		outNet.setCurrent(tail)
		copy(g.pipeline[1:], g.pipeline[:g.delay-1])
		g.pipeline[0] = newVal
		c.debugf("t=%d gate %s: out=%s push=%s", t, g.id, tail, newVal)
	} else {
		g.pipeline[0] = newVal
	}

	g.ticked = true
	g.resetPending = false
	if t > g.lastTicked {
		g.lastTicked = t
	}

	return outNet.tick(c, t)
}

// reset clears the ticked and traced guards so the next tick/trace pass can
// re-enter this gate, and forwards reset(t) to the output net.
func (g *Gate) reset(c *Circuit, t int) error {
	if g.resetPending {
		return nil
	}
	g.resetPending = true
	g.ticked = false
	g.traced = false

	outNet, ok := c.nets[g.output]
	if !ok {
		return fmt.Errorf("circuit: gate %q: %w", g.id, ErrNullReference)
	}

	return outNet.reset(c, t)
}

// trace returns the longest delay path discovered so far through this
// gate's branch: max(best, output-net.trace(best + delay)).
func (g *Gate) trace(c *Circuit, best int) (int, error) {
	if g.traced {
		return best, nil
	}
	g.traced = true

	outNet, ok := c.nets[g.output]
	if !ok {
		return 0, fmt.Errorf("circuit: gate %q: %w", g.id, ErrNullReference)
	}

	v, err := outNet.trace(c, best+g.delay)
	if err != nil {
		return 0, err
	}
	if v > best {
		return v, nil
	}

	return best, nil
}
