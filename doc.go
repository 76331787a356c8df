// Package ternsim is a discrete-time, gate-level digital-logic simulator
// with three-valued logic.
//
// 🚀 What is ternsim?
//
//	Given a structural netlist of primitive gates and a timed stimulus
//	program, ternsim computes the logic value on every output pad at every
//	time unit, honoring per-gate propagation delays:
//
//	  • Ternary algebra: NOT/AND/OR/NAND/NOR/XOR/XNOR over {0, 1, X}
//	  • Delay pipelines: each gate is a pure function behind a d-tick shift register
//	  • Horizon tracing: the run length is derived from the circuit's longest delay path
//
// ✨ Why choose ternsim?
//
//   - Deterministic         — identical inputs produce identical waveforms, always
//   - Honest about unknowns — X propagates exactly as far as it must, no further
//   - Pure Go               — no cgo, nothing global, everything owned by the Circuit
//
// Everything is organized under five subpackages and one command:
//
//	ternary/     — the three-valued algebra: Value and the seven primitive operators
//	circuit/     — Net, Gate, Pad, PadState, Vector and the owning Circuit arena
//	validate/    — pre-run acyclicity check over the gate dependency graph
//	parse/       — netlist and stimulus text-format readers
//	render/      — ASCII timing-diagram renderer
//	cmd/ternsim/ — the interactive command-line front-end
//
// Quick ASCII example:
//
//	    A ──[ NOT, 2ns ]── Y
//
//	driving A low at t=0 yields Y: X X 1 1 — two ticks of pipeline drain,
//	then the settled inverted value.
//
//	go get github.com/katalvlaran/ternsim
package ternsim
