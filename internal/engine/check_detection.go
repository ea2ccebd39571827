package engine

import "github.com/lgbarn/chessbox/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A side whose king has been captured is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false
	}
	return IsAttacked(board, king.Square, colour.Opposite())
}

// IsAttacked returns true if any piece of byColour could capture on sq under
// the current occupancy. Whatever stands on sq is ignored, so a defended
// piece counts as attacked.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, piece := range board.PiecesOf(byColour) {
		if attacks(board, piece, sq) {
			return true
		}
	}
	return false
}

// attacks reports whether a single piece reaches sq as a capture.
func attacks(board *chess.Board, piece *chess.Piece, sq chess.Square) bool {
	if piece.Square == sq {
		return false
	}

	switch piece.Kind {
	case chess.King:
		// Neighbours only: the castling shift never captures, and a king's
		// own check safety is not consulted here.
		return isAdjacent(piece.Square, sq)

	case chess.Pawn:
		return isPawnAttack(piece, sq)

	case chess.Knight:
		return ShapeMove(piece, sq)

	default:
		return ShapeMove(piece, sq) && IsPathClear(board, piece.Square, sq)
	}
}

// Attackers returns every piece of byColour that attacks sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, piece := range board.PiecesOf(byColour) {
		if attacks(board, piece, sq) {
			out = append(out, piece)
		}
	}
	return out
}
