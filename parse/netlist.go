package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ternsim/circuit"
)

// gateTokens maps each accepted netlist gate keyword to its GateKind and
// its input arity (1 for the NOT family, 2 for everything else).
var gateTokens = map[string]struct {
	kind  circuit.GateKind
	arity int
}{
	"NOT":      {circuit.NotGate, 1},
	"INV":      {circuit.NotGate, 1},
	"INVERTER": {circuit.NotGate, 1},
	"AND":      {circuit.AndGate, 2},
	"OR":       {circuit.OrGate, 2},
	"NAND":     {circuit.NandGate, 2},
	"NOR":      {circuit.NorGate, 2},
	"XOR":      {circuit.XorGate, 2},
	"XNOR":     {circuit.XnorGate, 2},
}

// Netlist reads a CIRCUIT/INPUT/OUTPUT/<GATE> program from r and builds a
// *circuit.Circuit. CIRCUIT must be the first non-blank line; it supplies
// the circuit's id. Nets are created lazily on first reference by any
// statement via a lookup-or-insert rewrite — circuit.AddGate/
// AddInPad/AddOutPad already do this internally, so Netlist never creates
// a net itself.
func Netlist(r io.Reader) (*circuit.Circuit, error) {
	scanner := bufio.NewScanner(r)

	var c *circuit.Circuit
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		keyword := fields[0]
		args := fields[1:]

		if c == nil {
			if keyword != "CIRCUIT" {
				return nil, fmt.Errorf("%w: line %d: expected CIRCUIT, got %q", ErrParseError, lineNo, keyword)
			}
			if len(args) != 1 {
				return nil, fmt.Errorf("%w: line %d: CIRCUIT requires exactly one id", ErrParseError, lineNo)
			}
			c = circuit.NewCircuit(args[0])

			continue
		}

		switch keyword {
		case "CIRCUIT":
			return nil, fmt.Errorf("%w: line %d: duplicate CIRCUIT statement", ErrParseError, lineNo)
		case "INPUT":
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: line %d: INPUT requires pad-id and net-id", ErrParseError, lineNo)
			}
			if err := c.AddInPad(args[0], args[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
			}
		case "OUTPUT":
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: line %d: OUTPUT requires pad-id and net-id", ErrParseError, lineNo)
			}
			if err := c.AddOutPad(args[0], args[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
			}
		default:
			if err := addGateLine(c, keyword, args, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseError, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: empty netlist", ErrParseError)
	}

	return c, nil
}

// addGateLine parses a <GATE> <delay> <in...> <out> line and calls
// c.AddGate with the synthesized gate id <GATE><in1>[<in2>]<out>.
func addGateLine(c *circuit.Circuit, keyword string, args []string, lineNo int) error {
	spec, ok := gateTokens[keyword]
	if !ok {
		return fmt.Errorf("%w: line %d: unknown statement %q", ErrParseError, lineNo, keyword)
	}
	if len(args) != spec.arity+2 {
		return fmt.Errorf("%w: line %d: %s requires delay, %d input(s), and an output", ErrParseError, lineNo, keyword, spec.arity)
	}

	delay, err := parseDelay(args[0], 0, 1)
	if err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
	}

	inputs := args[1 : 1+spec.arity]
	output := args[len(args)-1]

	id := keyword
	for _, in := range inputs {
		id += in
	}
	id += output

	if err := c.AddGate(id, spec.kind, delay, inputs, output); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
	}

	return nil
}
