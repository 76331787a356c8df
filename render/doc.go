// Package render draws a *circuit.Vector's recorded waveforms as an ASCII
// timing-diagram table: one row per pad-state, one column per tick. It is
// an external collaborator to the simulation core and reads exclusively
// through circuit's exported PadState/Vector accessors.
package render
