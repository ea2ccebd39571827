package engine

import (
	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
)

// validateCastle checks a king's two-file shift. The king and the corner rook
// on the king's rank must both be unmoved, the squares between them empty,
// and the king's origin, transit and destination squares unattacked.
func validateCastle(board *chess.Board, king *chess.Piece, to chess.Square) (Move, error) {
	from := king.Square
	reject := func() (Move, error) {
		return Move{}, errors.Reject(errors.ErrCastleIllegal, from, to)
	}

	kind := chess.CastleKingside
	if to.X < from.X {
		kind = chess.CastleQueenside
	}
	dir := sign(to.X - from.X)

	if !king.CanCastle() {
		return reject()
	}

	rookFrom, _ := castleRookSquares(from, kind)
	rook := board.At(rookFrom)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
		return reject()
	}

	for sq := from.Offset(dir, 0); sq != rookFrom && sq.Valid(); sq = sq.Offset(dir, 0) {
		if board.Occupied(sq) {
			return reject()
		}
	}

	opponent := king.Colour.Opposite()
	for _, sq := range []chess.Square{from, from.Offset(dir, 0), to} {
		if IsAttacked(board, sq, opponent) {
			return reject()
		}
	}

	return Move{From: from, To: to, Kind: kind}, nil
}

// castleRookSquares returns where the participating rook stands and where it
// lands: the corner of the king's rank, moving to the square the king passes.
func castleRookSquares(kingFrom chess.Square, kind chess.MoveKind) (from, to chess.Square) {
	if kind == chess.CastleQueenside {
		return chess.Sq(0, kingFrom.Y), kingFrom.Offset(-1, 0)
	}
	return chess.Sq(chess.BoardSize-1, kingFrom.Y), kingFrom.Offset(1, 0)
}
