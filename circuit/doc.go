// Package circuit implements the discrete-time simulation engine: Net,
// Gate, Pad, PadState, Vector, and the owning Circuit arena.
//
// Circuit owns every Net, Gate, and Pad by id in flat maps (no owning
// pointers cross node boundaries); cross-references are stable string ids
// resolved back through the arena at traversal time. This breaks the
// pointer-cyclic ownership a naive gate↔net object graph would otherwise
// have, while keeping the recursive tick/reset/trace traversal the
// simulation algorithm actually wants.
//
// Simulation is single-threaded and synchronous: Circuit.Run loops ticks
// 0..T, and within a tick every node's tick/reset/trace call completes
// before returning. There are no goroutines and no suspension points; the
// only concession to long-running calls is a context.Context checked once
// per tick in Run, so a caller can abandon a large simulation between
// ticks without reaching for goroutines.
//
// Complexity: one input pad-state's traversal is O(G + N) where G is the
// gate count and N the net count, since within it every gate and net is
// visited at most once (enforced by the ticked/resetPending guard flags on
// Gate and Pad). The guards are reset after each pad-state, so a full tick
// is O(P * (G + N)) for P pad-states; a gate still shifts its pipeline
// only once per tick.
package circuit
