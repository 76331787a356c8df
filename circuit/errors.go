package circuit

import (
	"errors"

	"github.com/katalvlaran/ternsim/ternary"
)

// Sentinel errors for circuit construction and simulation. Each corresponds
// to one error taxon; callers branch on these with errors.Is.
var (
	// ErrMissingID indicates an empty identifier where one was required.
	ErrMissingID = errors.New("circuit: missing id")

	// ErrNullReference indicates a required linkage (gate output, pad net,
	// vector) was unset at use.
	ErrNullReference = errors.New("circuit: null reference")

	// ErrIndexOutOfRange indicates a numeric index outside a container's
	// valid range.
	ErrIndexOutOfRange = errors.New("circuit: index out of range")

	// ErrNegativeRange indicates a non-positive size where a positive one
	// was required.
	ErrNegativeRange = errors.New("circuit: non-positive range")

	// ErrInvalidDelay indicates a gate delay <= 0 at construction.
	ErrInvalidDelay = errors.New("circuit: delay must be >= 1")

	// ErrEmptyStateTable indicates a read from a never-written schedule.
	ErrEmptyStateTable = errors.New("circuit: empty state table")

	// ErrElementNotFound indicates an id-based lookup missed.
	ErrElementNotFound = errors.New("circuit: element not found")

	// ErrNoInputs indicates a gate was evaluated with the wrong number of
	// input nets for its kind (exactly one for NOT, at least two otherwise).
	ErrNoInputs = errors.New("circuit: gate has insufficient inputs")

	// ErrNoOutput indicates a gate was evaluated with no output net set.
	ErrNoOutput = errors.New("circuit: gate has no output")

	// ErrSchemaMismatch indicates a PadState references a pad absent from
	// the Circuit.
	ErrSchemaMismatch = errors.New("circuit: schema mismatch")
)

// ErrUnknownLogicValue re-exports ternary.ErrUnknownLogicValue so callers
// need only import circuit to branch on every taxon.
var ErrUnknownLogicValue = ternary.ErrUnknownLogicValue
