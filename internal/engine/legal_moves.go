package engine

import "github.com/lgbarn/chessbox/internal/chess"

// LegalDestinations returns every square the piece on from may move to.
// Squares are listed file by file, a8 first. An empty or opposing origin
// yields no destinations.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	moves := legalMovesFrom(board, from)
	if len(moves) == 0 {
		return nil
	}
	out := make([]chess.Square, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	return out
}

// LegalMoves returns every legal move of the side to move, grouped by piece
// in roster order.
func LegalMoves(board *chess.Board) []Move {
	var moves []Move
	for _, piece := range board.PiecesOf(board.ToMove) {
		moves = append(moves, legalMovesFrom(board, piece.Square)...)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, piece := range board.PiecesOf(board.ToMove) {
		if len(legalMovesFrom(board, piece.Square)) > 0 {
			return true
		}
	}
	return false
}

// legalMovesFrom tries every square on the board as a destination.
func legalMovesFrom(board *chess.Board, from chess.Square) []Move {
	piece := board.At(from)
	if piece == nil || piece.Colour != board.ToMove {
		return nil
	}

	var moves []Move
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if move, err := Validate(board, from, chess.Sq(x, y)); err == nil {
				moves = append(moves, move)
			}
		}
	}
	return moves
}
