// Package errors provides sentinel errors and error types for chessbox.
// Move rejections are plain sentinels so callers can branch on the reason
// with errors.Is(); MoveError attaches the squares involved.
package errors

import (
	"errors"
	"fmt"

	"github.com/lgbarn/chessbox/internal/chess"
)

// Move rejections. None of them leave any change on the board.
var (
	// ErrWrongSide indicates the origin square is empty or holds a piece of
	// the side not to move.
	ErrWrongSide = errors.New("no piece of the side to move on origin square")

	// ErrShapeInvalid indicates the piece cannot move that way.
	ErrShapeInvalid = errors.New("piece cannot move that way")

	// ErrSameSideBlocked indicates the destination holds a piece of the mover's side.
	ErrSameSideBlocked = errors.New("destination occupied by own piece")

	// ErrPathBlocked indicates a piece stands between origin and destination.
	ErrPathBlocked = errors.New("path is blocked")

	// ErrWouldBeInCheck indicates a king move onto an attacked square.
	ErrWouldBeInCheck = errors.New("king would be in check")

	// ErrCastleIllegal indicates a castling precondition does not hold.
	ErrCastleIllegal = errors.New("castling not allowed")

	// ErrPawnCaptureGeometry indicates a pawn moving onto an occupied square
	// other than a forward diagonal.
	ErrPawnCaptureGeometry = errors.New("pawns capture only diagonally forward")
)

// Caller errors.
var (
	// ErrInvalidCoordinate indicates a square outside the 8x8 board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrGameOver indicates a move was requested after a king was captured.
	ErrGameOver = errors.New("game is over")

	// ErrNoLegalMoves indicates the side to move has nothing to play.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCorruptSnapshot indicates a persisted game that cannot be restored.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// IsRejection reports whether err is one of the move rejections.
func IsRejection(err error) bool {
	for _, r := range []error{
		ErrWrongSide, ErrShapeInvalid, ErrSameSideBlocked, ErrPathBlocked,
		ErrWouldBeInCheck, ErrCastleIllegal, ErrPawnCaptureGeometry,
	} {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// MoveError wraps a rejection or caller error with the requested move.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error        // The underlying error
	From chess.Square // Requested origin
	To   chess.Square // Requested destination
}

// Error returns a formatted error message including both squares.
func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s-%s: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Reject builds a MoveError for the given move.
func Reject(err error, from, to chess.Square) error {
	return &MoveError{Err: err, From: from, To: to}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
