package validate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ternsim/circuit"
)

// Three-color DFS state: white is unvisited, gray is on the current
// recursion path, black is fully explored. A gray-to-gray edge is a
// back-edge, i.e. a cycle.
const (
	white = iota
	gray
	black
)

// CheckAcyclic walks the gate dependency graph implied by c's nets (an
// edge from gate A to gate B exists whenever A drives a net that feeds one
// of B's inputs) and returns ErrCycleDetected, naming one offending cycle,
// if a feedback loop exists. Pads are not part of this graph: only
// gate-to-gate dependencies can cycle, since pads have no inputs of their
// own.
func CheckAcyclic(c *circuit.Circuit) error {
	if c == nil {
		return nil
	}

	gateIDs := c.GateIDs()
	state := make(map[string]int, len(gateIDs))
	path := make([]string, 0, len(gateIDs))

	for _, id := range gateIDs {
		if state[id] == white {
			if cyc := visit(c, id, state, &path); cyc != nil {
				return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cyc, " -> "))
			}
		}
	}

	return nil
}

// visit runs DFS from gate id, returning the discovered cycle (as an
// ordered id path closing back on its start) if a gray-to-gray back-edge
// is found, or nil if id's whole branch completes cleanly.
func visit(c *circuit.Circuit, id string, state map[string]int, path *[]string) []string {
	state[id] = gray
	*path = append(*path, id)

	g, ok := c.Gate(id)
	if ok {
		for _, dep := range dependents(c, g) {
			switch state[dep] {
			case white:
				if cyc := visit(c, dep, state, path); cyc != nil {
					return cyc
				}
			case gray:
				idx := indexOf(*path, dep)
				cyc := append([]string(nil), (*path)[idx:]...)

				return append(cyc, dep)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black

	return nil
}

// dependents returns the ids of gates that g directly depends on: the
// driver gate of each of g's input nets, where that driver is itself a
// gate (an input pad has no predecessor to chase).
func dependents(c *circuit.Circuit, g *circuit.Gate) []string {
	var deps []string
	for _, netID := range g.Inputs() {
		n, ok := c.Net(netID)
		if !ok {
			continue
		}
		if gid, isGate := n.DriverGateID(); isGate {
			deps = append(deps, gid)
		}
	}

	return deps
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
