package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ternsim/circuit"
	"github.com/katalvlaran/ternsim/ternary"
)

// Stimulus reads a VECTOR/INPUT program from r against circuit c and
// builds the *circuit.Vector it describes. VECTOR must appear before any
// INPUT line. Every IN-Pad and OUT-Pad on c gets exactly one PadState
// (c.NewInputPadState/NewOutputPadState reject pads absent from c): OUT-Pads always
// get one regardless of what the stimulus file mentions, and IN-Pads never
// named by an INPUT line get one seeded held at their default value from
// t=0, so the Vector/Pad bijection invariant holds for both kinds.
func Stimulus(r io.Reader, c *circuit.Circuit) (*circuit.Vector, error) {
	scanner := bufio.NewScanner(r)

	var vec *circuit.Vector
	inputs := make(map[string]*circuit.PadState)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		keyword := fields[0]
		args := fields[1:]

		if vec == nil {
			if keyword != "VECTOR" {
				return nil, fmt.Errorf("%w: line %d: expected VECTOR, got %q", ErrParseError, lineNo, keyword)
			}
			if len(args) != 1 {
				return nil, fmt.Errorf("%w: line %d: VECTOR requires exactly one id", ErrParseError, lineNo)
			}
			vec = circuit.NewVector(args[0])

			continue
		}

		switch keyword {
		case "VECTOR":
			return nil, fmt.Errorf("%w: line %d: duplicate VECTOR statement", ErrParseError, lineNo)
		case "INPUT":
			if len(args) != 3 {
				return nil, fmt.Errorf("%w: line %d: INPUT requires pad-id, delay, and value", ErrParseError, lineNo)
			}
			padID := args[0]

			delay, err := parseDelay(args[1], -1, 0)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
			}

			val, err := ternary.Parse(args[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
			}

			ps, ok := inputs[padID]
			if !ok {
				ps, err = c.NewInputPadState(padID, padID, ternary.Unknown)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrParseError, lineNo, err)
				}
				inputs[padID] = ps
				vec.AddPadState(ps)
			}
			ps.AddState(val, delay, 1)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown statement %q", ErrParseError, lineNo, keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseError, err)
	}
	if vec == nil {
		return nil, fmt.Errorf("%w: empty stimulus", ErrParseError)
	}

	for _, padID := range c.InPadIDs() {
		if _, ok := inputs[padID]; ok {
			continue
		}
		ps, err := c.NewInputPadState(padID, padID, ternary.Unknown)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseError, err)
		}
		ps.AddState(ternary.Unknown, 0, 1)
		inputs[padID] = ps
		vec.AddPadState(ps)
	}

	for _, padID := range c.OutPadIDs() {
		ps, err := c.NewOutputPadState(padID, padID, ternary.Unknown)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseError, err)
		}
		vec.AddPadState(ps)
	}

	return vec, nil
}
