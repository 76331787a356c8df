package circuit_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/ternsim/circuit"
	"github.com/katalvlaran/ternsim/ternary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waveform converts an output pad-state's schedule into a compact string
// like "XX11" for terse assertion failure messages.
func waveform(ps *circuit.PadState) string {
	s := ""
	for _, v := range ps.Schedule() {
		s += v.String()
	}

	return s
}

// TestScenario1_NotDelay2 exercises a single NOT gate with delay 2,
// stimulus driving A to 0 from t=0.
//
// Stage 1: build CIRCUIT c1 / INPUT A a / NOT 2 a b / OUTPUT Y b.
// Stage 2: attach a vector stimulating A=0 from t=0.
// Stage 3: compute the horizon via Trace and assert it is 3.
// Stage 4: run to the horizon and assert Y's recorded waveform is
// [X, X, 1, 1].
func TestScenario1_NotDelay2(t *testing.T) {
	c := circuit.NewCircuit("c1")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddGate("NOTab", circuit.NotGate, 2, []string{"a"}, "b"))
	require.NoError(t, c.AddOutPad("Y", "b"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.Low, 0, 1)
	vec.AddPadState(inA)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	horizon, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, 3, horizon)

	require.NoError(t, c.Run(context.Background(), horizon))
	assert.Equal(t, "XX11", waveform(outY))
}

// TestScenario2_AndDelay1 exercises a two-input AND gate with delay 1.
func TestScenario2_AndDelay1(t *testing.T) {
	c := circuit.NewCircuit("c2")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("ANDaby", circuit.AndGate, 1, []string{"a", "b"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)

	inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
	require.NoError(t, err)
	inB.AddState(ternary.High, 0, 3)
	inB.AddState(ternary.Low, 3, 1)
	vec.AddPadState(inB)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	horizon, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, 4, horizon)

	require.NoError(t, c.Run(context.Background(), horizon))
	assert.Equal(t, "X1110", waveform(outY))
}

// TestScenario3_XPropagationThroughAnd reuses the Scenario2 circuit, but
// A holds X forever. Y must hold X at
// every tick >= 1 (tick 0 is also X, since the gate has not yet shifted).
func TestScenario3_XPropagationThroughAnd(t *testing.T) {
	c := circuit.NewCircuit("c2")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("ANDaby", circuit.AndGate, 1, []string{"a", "b"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.Unknown, 0, 1)
	vec.AddPadState(inA)

	inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
	require.NoError(t, err)
	inB.AddState(ternary.High, 0, 1)
	vec.AddPadState(inB)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	require.NoError(t, c.Run(context.Background(), 5))
	wave := outY.Schedule()
	for i := 1; i < len(wave); i++ {
		assert.Equal(t, ternary.Unknown, wave[i], "tick %d", i)
	}
}

// TestScenario4_FanOutDiamond exercises a diamond
// fan-in (two NOT gates from the same source feeding one AND gate) must
// shift the AND gate's pipeline exactly once per tick.
func TestScenario4_FanOutDiamond(t *testing.T) {
	c := circuit.NewCircuit("c4")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddGate("NOT1", circuit.NotGate, 1, []string{"a"}, "b"))
	require.NoError(t, c.AddGate("NOT2", circuit.NotGate, 1, []string{"a"}, "cc"))
	require.NoError(t, c.AddGate("AND1", circuit.AndGate, 1, []string{"b", "cc"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	horizon, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, 3, horizon)

	require.NoError(t, c.Run(context.Background(), horizon))
	assert.Equal(t, "XX00", waveform(outY))
}

// TestScenario5_ChainHorizon exercises five NOT
// gates of delay 1 in series. With A held at 0 from t=0, the final output
// is X while the signal is still draining through the pipeline, then
// settles at the chain-parity value (1 for five inversions of 0) once it
// has propagated all the way through.
func TestScenario5_ChainHorizon(t *testing.T) {
	c := circuit.NewCircuit("c5")
	require.NoError(t, c.AddInPad("A", "n0"))
	for i := 0; i < 5; i++ {
		in := "n" + string(rune('0'+i))
		out := "n" + string(rune('0'+i+1))
		require.NoError(t, c.AddGate("NOT"+string(rune('0'+i)), circuit.NotGate, 1, []string{in}, out))
	}
	require.NoError(t, c.AddOutPad("Y", "n5"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.Low, 0, 1)
	vec.AddPadState(inA)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	horizon, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, 6, horizon) // 1 (schedule length) + 5 (chain delay)

	require.NoError(t, c.Run(context.Background(), horizon))
	wave := outY.Schedule()
	require.Len(t, wave, horizon+1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, ternary.Unknown, wave[i], "tick %d should still be draining", i)
	}
	assert.Equal(t, ternary.High, wave[5], "five inversions of 0 is 1")
}

// TestScenario6_HeldFinalValue checks that an input
// scheduled only at t=0 must hold its value for every later tick, even
// when the run horizon exceeds the recorded schedule length.
func TestScenario6_HeldFinalValue(t *testing.T) {
	c := circuit.NewCircuit("c6")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddGate("NOTab", circuit.NotGate, 1, []string{"a"}, "b"))
	require.NoError(t, c.AddOutPad("Y", "b"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	require.NoError(t, c.Run(context.Background(), 10))
	wave := outY.Schedule()
	for i := 1; i < len(wave); i++ {
		assert.Equal(t, ternary.Low, wave[i], "held NOT(1)=0 at tick %d", i)
	}
}

// TestSingleShiftAcrossInputPads exercises a two-input AND gate with
// delay 2 driven by two distinct input pads both scheduled to change at
// t=0. A gate that shifted twice within this one tick (once per input
// pad's propagation) would skip a pipeline slot and make the combinational
// value appear a tick early; the gate's lastTicked guard must cap it to
// exactly one shift regardless of how many pad-states reach it at the
// same t.
func TestSingleShiftAcrossInputPads(t *testing.T) {
	c := circuit.NewCircuit("cshift")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("ANDaby", circuit.AndGate, 2, []string{"a", "b"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)

	inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
	require.NoError(t, err)
	inB.AddState(ternary.High, 0, 1)
	vec.AddPadState(inB)

	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)

	c.AttachVector(vec)

	require.NoError(t, c.Run(context.Background(), 4))
	assert.Equal(t, "XX111", waveform(outY))
}

// TestDeterminism runs the same netlist+stimulus twice and asserts
// identical output histories.
func TestDeterminism(t *testing.T) {
	build := func() (*circuit.Circuit, *circuit.PadState) {
		c := circuit.NewCircuit("c2")
		require.NoError(t, c.AddInPad("A", "a"))
		require.NoError(t, c.AddInPad("B", "b"))
		require.NoError(t, c.AddGate("ANDaby", circuit.AndGate, 1, []string{"a", "b"}, "y"))
		require.NoError(t, c.AddOutPad("Y", "y"))

		vec := circuit.NewVector("v")
		inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
		require.NoError(t, err)
		inA.AddState(ternary.High, 0, 1)
		vec.AddPadState(inA)

		inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
		require.NoError(t, err)
		inB.AddState(ternary.High, 0, 1)
		vec.AddPadState(inB)

		outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
		require.NoError(t, err)
		vec.AddPadState(outY)

		c.AttachVector(vec)

		return c, outY
	}

	c1, y1 := build()
	require.NoError(t, c1.Run(context.Background(), 5))
	c2, y2 := build()
	require.NoError(t, c2.Run(context.Background(), 5))

	assert.Equal(t, y1.Schedule(), y2.Schedule())
}

// TestBijection asserts every IN-Pad and OUT-Pad has exactly one
// PadState in the Vector once stimulus is attached.
func TestBijection(t *testing.T) {
	c := circuit.NewCircuit("c2")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("ANDaby", circuit.AndGate, 1, []string{"a", "b"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	for _, id := range c.InPadIDs() {
		ps, err := c.NewInputPadState(id, id, ternary.Unknown)
		require.NoError(t, err)
		vec.AddPadState(ps)
	}
	for _, id := range c.OutPadIDs() {
		ps, err := c.NewOutputPadState(id, id, ternary.Unknown)
		require.NoError(t, err)
		vec.AddPadState(ps)
	}
	c.AttachVector(vec)

	for _, id := range append(append([]string{}, c.InPadIDs()...), c.OutPadIDs()...) {
		_, ok := vec.PadState(id)
		assert.True(t, ok, "pad %q must have exactly one PadState", id)
	}
	assert.Len(t, vec.PadStates(), len(c.InPadIDs())+len(c.OutPadIDs()))
}

// TestNotGateRejectsMultipleInputs asserts the recommended structural
// error for a NOT gate declared with more than one input.
func TestNotGateRejectsMultipleInputs(t *testing.T) {
	c := circuit.NewCircuit("cbad")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("NOTbad", circuit.NotGate, 1, []string{"a", "b"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)
	inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
	require.NoError(t, err)
	inB.AddState(ternary.High, 0, 1)
	vec.AddPadState(inB)
	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)
	c.AttachVector(vec)

	err = c.Run(context.Background(), 1)
	assert.ErrorIs(t, err, circuit.ErrNoInputs)
}

// TestWithDebugWriter asserts a circuit built with the option writes one
// line per gate shift and per tick to its own writer.
func TestWithDebugWriter(t *testing.T) {
	var buf bytes.Buffer
	c := circuit.NewCircuit("cdbg", circuit.WithDebugWriter(&buf))
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddGate("NOTab", circuit.NotGate, 1, []string{"a"}, "b"))
	require.NoError(t, c.AddOutPad("Y", "b"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.Low, 0, 1)
	vec.AddPadState(inA)
	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)
	c.AttachVector(vec)

	require.NoError(t, c.Run(context.Background(), 2))

	out := buf.String()
	assert.Contains(t, out, "gate NOTab")
	assert.Contains(t, out, "t=2 done")
	// One shift line per gate per tick plus one completion line per tick.
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

// TestTraceExploresEachInputIndependently builds two input branches of
// very different depth converging on one shared AND gate: A through a
// delay-1 NOT, B through a delay-10 NOT. If the shared gate's traced flag
// survived from A's exploration into B's, B's branch would stop at the
// AND gate and report only its own prefix delay (10) instead of carrying
// on through the gate's delay to the output (12). The horizon must be
// 2 transitions + 12 = 14.
func TestTraceExploresEachInputIndependently(t *testing.T) {
	c := circuit.NewCircuit("ctrace")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddInPad("B", "b"))
	require.NoError(t, c.AddGate("NOTam", circuit.NotGate, 1, []string{"a"}, "m"))
	require.NoError(t, c.AddGate("NOTbn", circuit.NotGate, 10, []string{"b"}, "n"))
	require.NoError(t, c.AddGate("ANDmny", circuit.AndGate, 2, []string{"m", "n"}, "y"))
	require.NoError(t, c.AddOutPad("Y", "y"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.High, 0, 1)
	vec.AddPadState(inA)
	inB, err := c.NewInputPadState("B", "B", ternary.Unknown)
	require.NoError(t, err)
	inB.AddState(ternary.High, 0, 1)
	vec.AddPadState(inB)
	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)
	c.AttachVector(vec)

	horizon, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, 14, horizon)
}

// TestDelayInvariant checks the delay invariant directly: a gate
// with delay d whose input is held steady forever outputs the pipeline
// default for ticks [0, d-1] and the combinational value from tick d on.
func TestDelayInvariant(t *testing.T) {
	const d = 3
	c := circuit.NewCircuit("cd")
	require.NoError(t, c.AddInPad("A", "a"))
	require.NoError(t, c.AddGate("NOTab", circuit.NotGate, d, []string{"a"}, "b"))
	require.NoError(t, c.AddOutPad("Y", "b"))

	vec := circuit.NewVector("v")
	inA, err := c.NewInputPadState("A", "A", ternary.Unknown)
	require.NoError(t, err)
	inA.AddState(ternary.Low, 0, 1)
	vec.AddPadState(inA)
	outY, err := c.NewOutputPadState("Y", "Y", ternary.Unknown)
	require.NoError(t, err)
	vec.AddPadState(outY)
	c.AttachVector(vec)

	require.NoError(t, c.Run(context.Background(), d+2))
	wave := outY.Schedule()
	for i := 0; i < d; i++ {
		assert.Equal(t, ternary.Unknown, wave[i], "tick %d still draining", i)
	}
	for i := d; i < len(wave); i++ {
		assert.Equal(t, ternary.High, wave[i], "tick %d settled", i)
	}
}
