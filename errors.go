package gridastar

import "github.com/pkg/errors"

// Configuration errors.
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrOutOfRange        = errors.New("coordinates out of range")
	ErrNilNode           = errors.New("node is nil")
	ErrForeignNode       = errors.New("node does not belong to this grid")
)

// Search precondition errors. A search that finds no path is not an error;
// it is reported through Result.Found.
var (
	ErrMissingEndpoint  = errors.New("missing search endpoint")
	ErrObstacleEndpoint = errors.New("search endpoint is an obstacle")
	ErrExpansionLimit   = errors.New("expansion limit reached")
)
