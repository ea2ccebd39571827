package testutil

import (
	"testing"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/engine"
)

// MustSquare parses an algebraic square name such as "e2".
// It calls t.Fatal on a malformed name.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// MustBoard builds a board from a FEN string.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return board
}

// NewTestGame starts a named game from a FEN position.
func NewTestGame(t *testing.T, fen string, opts ...engine.GameOption) *engine.Game {
	t.Helper()
	opts = append([]engine.GameOption{engine.WithName("test-game"), engine.WithBoard(MustBoard(t, fen))}, opts...)
	return engine.NewGame(opts...)
}

// MustPlay plays moves written like "e2e4" and fails the test on the first
// rejected one.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("malformed test move %q", m)
		}
		if _, _, err := g.Play(MustSquare(t, m[:2]), MustSquare(t, m[2:])); err != nil {
			t.Fatalf("Play(%s) error = %v", m, err)
		}
	}
}
