package ternary

import "errors"

// ErrUnknownLogicValue indicates a value read as logic state was not one of
// "0", "1", "2", "X", or "x".
var ErrUnknownLogicValue = errors.New("ternary: unknown logic value")

// Value is a single three-valued logic signal.
type Value int8

const (
	// Low is the defined 0 state.
	Low Value = iota
	// High is the defined 1 state.
	High
	// Unknown is the indeterminate/undriven state.
	Unknown
)

// Parse converts a textual logic value into a Value.
// Accepts "0", "1", and "2"|"X"|"x" for Unknown.
func Parse(s string) (Value, error) {
	switch s {
	case "0":
		return Low, nil
	case "1":
		return High, nil
	case "2", "X", "x":
		return Unknown, nil
	default:
		return Unknown, ErrUnknownLogicValue
	}
}

// String renders the Value as "0", "1", or "X".
func (v Value) String() string {
	switch v {
	case Low:
		return "0"
	case High:
		return "1"
	default:
		return "X"
	}
}
