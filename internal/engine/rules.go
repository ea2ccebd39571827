// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
)

// Move is a validated move ready to be applied. Castling moves name the king's
// squares; the participating rook is implied by Kind.
type Move struct {
	From chess.Square
	To   chess.Square
	Kind chess.MoveKind
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Validate decides whether the side to move may play from-to on board.
// It never mutates the board. Rejections are returned as *errors.MoveError
// wrapping one of the rejection sentinels.
func Validate(board *chess.Board, from, to chess.Square) (Move, error) {
	if !from.Valid() || !to.Valid() {
		return Move{}, errors.Reject(errors.ErrInvalidCoordinate, from, to)
	}

	piece := board.At(from)
	if piece == nil || piece.Colour != board.ToMove {
		return Move{}, errors.Reject(errors.ErrWrongSide, from, to)
	}

	target := board.At(to)

	// A pawn onto an occupied square can only be a diagonal capture.
	if piece.Kind == chess.Pawn && target != nil {
		if !isPawnAttack(piece, to) {
			return Move{}, errors.Reject(errors.ErrPawnCaptureGeometry, from, to)
		}
		if target.Colour == piece.Colour {
			return Move{}, errors.Reject(errors.ErrSameSideBlocked, from, to)
		}
		return Move{From: from, To: to, Kind: pawnMoveKind(piece, to, chess.Capture)}, nil
	}

	if !ShapeMove(piece, to) {
		return Move{}, errors.Reject(errors.ErrShapeInvalid, from, to)
	}

	if target != nil && target.Colour == piece.Colour {
		return Move{}, errors.Reject(errors.ErrSameSideBlocked, from, to)
	}

	switch piece.Kind {
	case chess.Rook, chess.Bishop, chess.Queen:
		if !IsPathClear(board, from, to) {
			return Move{}, errors.Reject(errors.ErrPathBlocked, from, to)
		}

	case chess.Pawn:
		// Double advance may not jump the square in front.
		if abs(to.Y-from.Y) == 2 && board.Occupied(from.Offset(0, piece.Colour.Forward())) {
			return Move{}, errors.Reject(errors.ErrPathBlocked, from, to)
		}
		return Move{From: from, To: to, Kind: pawnMoveKind(piece, to, chess.Normal)}, nil

	case chess.King:
		if isCastleShape(to.X-from.X, to.Y-from.Y) {
			return validateCastle(board, piece, to)
		}
		if kingWouldBeAttacked(board, piece, to) {
			return Move{}, errors.Reject(errors.ErrWouldBeInCheck, from, to)
		}
	}

	kind := chess.Normal
	if target != nil {
		kind = chess.Capture
	}
	return Move{From: from, To: to, Kind: kind}, nil
}

// pawnMoveKind upgrades a pawn move reaching the farthest row to Promotion.
func pawnMoveKind(pawn *chess.Piece, to chess.Square, kind chess.MoveKind) chess.MoveKind {
	if to.Y == pawn.Colour.PromotionRow() {
		return chess.Promotion
	}
	return kind
}

// kingWouldBeAttacked stands the king on to, capturing any occupant, and
// asks whether the opponent then attacks that square. Only the king's
// destination is examined.
func kingWouldBeAttacked(board *chess.Board, king *chess.Piece, to chess.Square) bool {
	trial := board.Copy()
	trial.Remove(to)
	if err := trial.Relocate(king.Square, to); err != nil {
		return true
	}
	return IsAttacked(trial, to, king.Colour.Opposite())
}
