package engine

import "github.com/lgbarn/chessbox/internal/chess"

// IsPathClear reports whether every square strictly between from and to is
// empty. It is defined for straight and diagonal lines only and returns false
// for any other pair. The destination itself is not examined.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if !isStraight(abs(dx), abs(dy)) && !isDiagonal(abs(dx), abs(dy)) {
		return false
	}

	colDir := sign(dx)
	rankDir := sign(dy)

	for sq := from.Offset(colDir, rankDir); sq != to; sq = sq.Offset(colDir, rankDir) {
		if board.Occupied(sq) {
			return false
		}
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
