package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDelay strips an optional trailing "ns" suffix and parses the
// remainder as a base-10 integer. Values at or below coerceAtOrBelow are
// coerced to coerceTo: gate delays coerce <= 0 to 1, stimulus delays
// coerce < 0 to 0.
func parseDelay(tok string, coerceAtOrBelow, coerceTo int) (int, error) {
	raw := strings.TrimSuffix(tok, "ns")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: delay %q: %v", ErrParseError, tok, err)
	}
	if n <= coerceAtOrBelow {
		return coerceTo, nil
	}

	return n, nil
}
