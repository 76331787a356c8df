package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ternsim/circuit"
)

// Diagram draws v as a row-major ASCII table: one row per pad-state, one
// column per tick from 0 to ticks-1 inclusive. Each column is a value
// character preceded by a separating space; pad ids are left-aligned to
// the widest id so the waveform columns line up.
//
// ticks is the number of columns to render (callers pass
// circuit.LogicalTime()+1 after a completed Run). Complexity: O(rows*ticks).
func Diagram(v *circuit.Vector, ticks int) string {
	if v == nil || ticks <= 0 {
		return ""
	}

	width := 0
	for _, ps := range v.PadStates() {
		if len(ps.PadID()) > width {
			width = len(ps.PadID())
		}
	}

	var b strings.Builder
	for _, ps := range v.PadStates() {
		fmt.Fprintf(&b, "%-*s |", width, ps.PadID())
		for t := 0; t < ticks; t++ {
			b.WriteByte(' ')
			b.WriteString(ps.ValueAt(t).String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
