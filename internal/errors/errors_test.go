package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessbox/internal/chess"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels compare equal
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrWrongSide, ErrShapeInvalid, ErrSameSideBlocked, ErrPathBlocked,
		ErrWouldBeInCheck, ErrCastleIllegal, ErrPawnCaptureGeometry,
		ErrInvalidCoordinate, ErrGameOver, ErrNoLegalMoves, ErrInvalidFEN,
		ErrInvalidConfig, ErrCorruptSnapshot,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"wrong side", ErrWrongSide, true},
		{"path blocked wrapped", Reject(ErrPathBlocked, chess.Sq(0, 0), chess.Sq(0, 5)), true},
		{"castle", fmt.Errorf("ctx: %w", ErrCastleIllegal), true},
		{"coordinate", ErrInvalidCoordinate, false},
		{"game over", ErrGameOver, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRejection(tt.err); got != tt.want {
				t.Errorf("IsRejection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	err := Reject(ErrShapeInvalid, chess.Sq(6, 7), chess.Sq(6, 5))

	msg := err.Error()
	for _, s := range []string{"g1", "g3", "cannot move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	wrapped := fmt.Errorf("human move: %w", Reject(ErrWouldBeInCheck, chess.Sq(4, 7), chess.Sq(4, 6)))

	var moveErr *MoveError
	if !errors.As(wrapped, &moveErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if moveErr.From != chess.Sq(4, 7) || moveErr.To != chess.Sq(4, 6) {
		t.Errorf("moveErr squares = %v-%v, want e1-e2", moveErr.From, moveErr.To)
	}
	if !errors.Is(wrapped, ErrWouldBeInCheck) {
		t.Error("errors.Is(wrapped, ErrWouldBeInCheck) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrCorruptSnapshot, "piece %d of %d", 3, 32)

	if !errors.Is(wrapped, ErrCorruptSnapshot) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "piece 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
