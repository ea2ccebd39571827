package engine

import (
	"math"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
)

// AutomatedSide is the colour played by the heuristic opponent.
const AutomatedSide = chess.Black

// Scoring weights for the heuristic opponent.
const (
	kingCaptureBonus = 1000
	exposurePenalty  = 0.15
	tempoDivisor     = 4
)

// Randomizer picks the piece the opponent starts its scan from.
// *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// ChooseMove picks a move for the side to move with a one-ply material
// heuristic. Pieces are scanned in roster order starting from a random
// piece; the first strictly best score wins.
//
// While its king is in check, a piece other than the king is only scored on
// moves that leave the king unattacked, and is skipped if it has none. If
// that leaves nothing to play, the scan is repeated without the restriction.
func ChooseMove(board *chess.Board, rnd Randomizer) (Move, error) {
	pieces := board.PiecesOf(board.ToMove)
	if len(pieces) == 0 {
		return Move{}, errors.ErrNoLegalMoves
	}

	start := 0
	if rnd != nil {
		start = rnd.Intn(len(pieces))
	}
	order := make([]*chess.Piece, 0, len(pieces))
	order = append(order, pieces[start:]...)
	order = append(order, pieces[:start]...)

	inCheck := IsInCheck(board, board.ToMove)
	if move, ok := bestMove(board, order, inCheck); ok {
		return move, nil
	}
	if inCheck {
		if move, ok := bestMove(board, order, false); ok {
			return move, nil
		}
	}
	return Move{}, errors.ErrNoLegalMoves
}

// bestMove scores every legal move of the given pieces.
func bestMove(board *chess.Board, order []*chess.Piece, guardKing bool) (Move, bool) {
	side := board.ToMove
	bestScore := math.Inf(-1)
	var best Move
	found := false

	for _, piece := range order {
		for _, move := range legalMovesFrom(board, piece.Square) {
			after, _, err := simulate(board, move)
			if err != nil {
				continue
			}
			if guardKing && piece.Kind != chess.King && IsInCheck(after, side) {
				continue
			}
			if score := scoreMove(board, after, piece, move); score > bestScore {
				bestScore = score
				best = move
				found = true
			}
		}
	}

	return best, found
}

// scoreMove rates a move from the mover's point of view.
//
//	captured value, plus 1000 for a king
//	minus a quarter of the mover's value
//	minus the mover's value if the destination is attacked afterwards
//	minus 0.15 if the mover is leaving its king's side
//	plus the mover's value if its origin is currently attacked
func scoreMove(before, after *chess.Board, piece *chess.Piece, move Move) float64 {
	own := piece.Kind.Value()
	opponent := piece.Colour.Opposite()
	score := -own / tempoDivisor

	if target := before.At(move.To); target != nil {
		score += target.Kind.Value()
		if target.Kind == chess.King {
			score += kingCaptureBonus
		}
	}

	if IsAttacked(after, move.To, opponent) {
		score -= own
	}

	if king := before.King(piece.Colour); king != nil && king != piece && isAdjacent(king.Square, piece.Square) {
		score -= exposurePenalty
	}

	if IsAttacked(before, piece.Square, opponent) {
		score += own
	}

	return score
}
