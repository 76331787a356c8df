package validate

import "errors"

// ErrCycleDetected is returned by CheckAcyclic when the gate dependency
// graph contains a feedback loop, which sequential circuits would need.
var ErrCycleDetected = errors.New("validate: cycle detected in gate dependency graph")
