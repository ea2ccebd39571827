package engine

import (
	"testing"

	"github.com/lgbarn/chessbox/internal/chess"
)

// sq parses an algebraic square name and panics on a typo.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return s
}

// isPiece reports whether the given piece stands on name.
func isPiece(b *chess.Board, name string, colour chess.Colour, kind chess.PieceKind) bool {
	p := b.At(sq(name))
	return p != nil && p.Colour == colour && p.Kind == kind
}

// playMove validates and applies a move written like "e2e4".
func playMove(t *testing.T, b *chess.Board, text string) chess.Outcome {
	t.Helper()
	move, err := Validate(b, sq(text[:2]), sq(text[2:4]))
	if err != nil {
		t.Fatalf("Validate(%s) error = %v", text, err)
	}
	outcome, err := Apply(b, move)
	if err != nil {
		t.Fatalf("Apply(%s) error = %v", text, err)
	}
	return outcome
}

// fixedRandomizer always returns the same index, clamped to the range.
type fixedRandomizer int

func (f fixedRandomizer) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
