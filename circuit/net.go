package circuit

import "github.com/katalvlaran/ternsim/ternary"

// refKind tags which arena map a nodeRef resolves through.
type refKind int8

const (
	refNone refKind = iota
	refGate
	refInPad
	refOutPad
)

// nodeRef is an id-addressed cross-reference into the Circuit arena. Nets,
// Gates, and Pads never hold owning pointers to each other; they hold a
// nodeRef and resolve it through the owning Circuit at traversal time.
type nodeRef struct {
	kind refKind
	id   string
}

// Net is a one-driver/many-reader signal carrier. It is passive: Tick never
// computes a value itself, it only forwards to readers in insertion order.
type Net struct {
	id      string
	current ternary.Value
	driver  nodeRef
	readers []nodeRef
}

func newNet(id string) *Net {
	return &Net{id: id, current: ternary.Unknown, driver: nodeRef{kind: refNone}}
}

// ID returns the net's identifier.
func (n *Net) ID() string { return n.id }

// Current returns the last value written by the net's driver, or Unknown
// before anything has been written.
func (n *Net) Current() ternary.Value { return n.current }

func (n *Net) setCurrent(v ternary.Value) { n.current = v }

func (n *Net) addReader(r nodeRef) { n.readers = append(n.readers, r) }

// DriverGateID returns the id of the gate driving this net and true, or
// ("", false) if the net is undriven or driven by an input pad instead.
func (n *Net) DriverGateID() (string, bool) {
	if n.driver.kind != refGate {
		return "", false
	}

	return n.driver.id, true
}

// tick forwards tick(t) to every reader in insertion order.
func (n *Net) tick(c *Circuit, t int) error {
	for _, r := range n.readers {
		if err := c.tickRef(r, t); err != nil {
			return err
		}
	}

	return nil
}

// reset forwards reset(t) to every reader in insertion order.
func (n *Net) reset(c *Circuit, t int) error {
	for _, r := range n.readers {
		if err := c.resetRef(r, t); err != nil {
			return err
		}
	}

	return nil
}

// trace returns the maximum over readers of reader.trace(best); a net
// itself adds 0 to the accumulator.
func (n *Net) trace(c *Circuit, best int) (int, error) {
	result := best
	for _, r := range n.readers {
		v, err := c.traceRef(r, best)
		if err != nil {
			return 0, err
		}
		if v > result {
			result = v
		}
	}

	return result, nil
}
