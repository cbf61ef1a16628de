package apperror

import "errors"

var (
	ErrOutOfRange     = errors.New("coordinates out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrNoLegalMove    = errors.New("no legal moves left")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrGameFinished   = errors.New("game is already finished")
	ErrMalformedInput = errors.New("malformed input line")
	ErrTurnOrder      = errors.New("turn order violated")
)

// Process exit codes reported to the adjudicator.
const (
	ExitOK          = 0
	ExitTurnOrder   = 1
	ExitMalformed   = 2
	ExitIllegalMove = 3
	ExitInternal    = 4
)

// ExitCode - maps an error returned by the protocol loop to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrNoLegalMove):
		return ExitOK
	case errors.Is(err, ErrTurnOrder):
		return ExitTurnOrder
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformed
	case errors.Is(err, ErrOutOfRange),
		errors.Is(err, ErrCellOccupied),
		errors.Is(err, ErrNotYourTurn),
		errors.Is(err, ErrGameFinished):
		return ExitIllegalMove
	default:
		return ExitInternal
	}
}
