// Package validate checks structural preconditions on a *circuit.Circuit
// before simulation starts.
//
// Combinational circuits assume the gate dependency graph is acyclic from
// input pads to output pads (no flip-flops, latches, or feedback loops).
// Nothing in the circuit package itself enforces that assumption — a
// feedback-wired netlist would simply make a gate's trace recurse into its own
// still-untraced ancestor and either under-count the horizon or, once the
// traced guard is set, silently stop exploring the loop. CheckAcyclic runs
// once, before Run, so a malformed netlist fails fast with a named cycle
// rather than producing a quietly wrong simulation.
//
// Complexity: O(G+N) where G is the gate count and N the net count, same
// bound as one input pad-state's traversal within a simulation tick.
package validate
