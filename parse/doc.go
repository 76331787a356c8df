// Package parse reads the two whitespace-separated ASCII text formats that
// front a simulation run: a netlist (CIRCUIT/INPUT/OUTPUT/<GATE> lines)
// building a *circuit.Circuit, and a stimulus program (VECTOR/INPUT lines)
// building the *circuit.Vector driven against it. Comments are not part of
// either format; every non-blank line is a statement.
//
// Both readers are external collaborators to the simulation core: they
// only ever call circuit's exported constructors (AddGate, AddInPad,
// AddOutPad, NewInputPadState, NewOutputPadState, AddState), never reach
// into unexported fields.
package parse
