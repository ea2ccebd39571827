package engine

import "github.com/lgbarn/chessbox/internal/chess"

// ShapeMove reports whether the piece's movement geometry allows it to reach
// target from its current square. Board occupancy and check are ignored.
//
// Pawn shapes cover advances only; captures are handled by the validator and
// the attack oracle because a pawn captures on a different geometry.
// The king shape includes the two-file lateral shift used for castling.
func ShapeMove(piece *chess.Piece, target chess.Square) bool {
	if piece == nil || !target.Valid() {
		return false
	}
	from := piece.Square
	dx := target.X - from.X
	dy := target.Y - from.Y
	colDiff := abs(dx)
	rankDiff := abs(dy)

	switch piece.Kind {
	case chess.Pawn:
		forward := piece.Colour.Forward()
		if dx != 0 {
			return false
		}
		if dy == forward {
			return true
		}
		return dy == 2*forward && from.Y == piece.Colour.PawnRow()

	case chess.Rook:
		return isStraight(colDiff, rankDiff)

	case chess.Bishop:
		return isDiagonal(colDiff, rankDiff)

	case chess.Queen:
		return isStraight(colDiff, rankDiff) || isDiagonal(colDiff, rankDiff)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.King:
		if colDiff <= 1 && rankDiff <= 1 {
			return colDiff+rankDiff != 0
		}
		return isCastleShape(dx, dy)
	}

	return false
}

// isStraight reports a rook line: same rank or same file, not the origin.
func isStraight(colDiff, rankDiff int) bool {
	return (colDiff == 0) != (rankDiff == 0)
}

// isDiagonal reports a bishop line: equal nonzero deltas.
func isDiagonal(colDiff, rankDiff int) bool {
	return colDiff == rankDiff && colDiff != 0
}

// isCastleShape reports a king shift of exactly two files along its rank.
func isCastleShape(dx, dy int) bool {
	return dy == 0 && abs(dx) == 2
}

// isAdjacent reports whether two distinct squares touch, diagonals included.
func isAdjacent(a, b chess.Square) bool {
	colDiff := abs(a.X - b.X)
	rankDiff := abs(a.Y - b.Y)
	return colDiff <= 1 && rankDiff <= 1 && colDiff+rankDiff != 0
}

// isPawnAttack reports whether target is one of the two squares diagonally
// in front of the pawn.
func isPawnAttack(pawn *chess.Piece, target chess.Square) bool {
	return target.Y-pawn.Square.Y == pawn.Colour.Forward() && abs(target.X-pawn.Square.X) == 1
}
