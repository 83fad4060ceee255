package board

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of these
// through errors.Is.
var (
	// ErrInvalidCoordinates reports a malformed or out-of-bounds row/column pair.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrIndexOutOfRange reports a linear position outside the grid.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidState reports an operation the cell state machine does not allow.
	ErrInvalidState = errors.New("invalid cell state")
	// ErrInvariantViolation reports a broken board invariant.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Specific conditions, each wrapping one of the kinds above.
var (
	ErrFlagged        = fmt.Errorf("%w: cell is flagged and cannot be cleared", ErrInvalidState)
	ErrAlreadyCleared = fmt.Errorf("%w: cell is already cleared", ErrInvalidState)
	ErrClearedFlag    = fmt.Errorf("%w: cleared cell cannot be flagged", ErrInvalidState)
	ErrNotFlagged     = fmt.Errorf("%w: cell is not flagged", ErrInvalidState)

	ErrCountOutOfRange   = fmt.Errorf("%w: adjacent count out of range", ErrInvariantViolation)
	ErrMinesPlaced       = fmt.Errorf("%w: mines are already placed", ErrInvariantViolation)
	ErrInvalidMineCount  = fmt.Errorf("%w: invalid mine count", ErrInvariantViolation)
	ErrDuplicatePosition = fmt.Errorf("%w: duplicate mine position", ErrInvariantViolation)
	ErrInvalidDimensions = fmt.Errorf("%w: grid dimensions must be positive", ErrInvariantViolation)
)
