package engine

import (
	"fmt"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
)

// Apply plays a move returned by Validate and updates the board state:
// capture removal, promotion to a queen, the castling rook's relocation,
// the moved flag and the side to move. It returns Won(mover) when the move
// captures a king.
//
// Apply trusts that the move was validated on this board in its current
// state; it only refuses moves whose squares are inconsistent with it.
func Apply(board *chess.Board, move Move) (chess.Outcome, error) {
	piece := board.At(move.From)
	if piece == nil {
		return chess.InProgress, errors.Reject(errors.ErrWrongSide, move.From, move.To)
	}
	mover := piece.Colour
	outcome := chess.InProgress

	if captured := board.Remove(move.To); captured != nil && captured.Kind == chess.King {
		outcome = chess.Won(mover)
	}

	// The rook goes first so the king's relocation never lands on a cell
	// the rook still occupies.
	if move.Kind.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move.From, move.Kind)
		if err := board.Relocate(rookFrom, rookTo); err != nil {
			return chess.InProgress, fmt.Errorf("castling rook: %w", err)
		}
	}

	if err := board.Relocate(move.From, move.To); err != nil {
		return chess.InProgress, err
	}

	if move.Kind == chess.Promotion {
		board.Remove(move.To)
		queen := &chess.Piece{Kind: chess.Queen, Colour: mover, Square: move.To, Moved: true}
		if err := board.Place(queen); err != nil {
			return chess.InProgress, fmt.Errorf("promotion: %w", err)
		}
	}

	board.ToMove = mover.Opposite()

	return outcome, nil
}

// simulate returns a copy of board with move applied.
func simulate(board *chess.Board, move Move) (*chess.Board, chess.Outcome, error) {
	trial := board.Copy()
	outcome, err := Apply(trial, move)
	return trial, outcome, err
}
