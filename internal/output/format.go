package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/config"
	"github.com/lgbarn/chessbox/internal/engine"
)

// FormatMove formats a move in the given notation. board is the position
// before the move was applied.
func FormatMove(move engine.Move, board *chess.Board, format config.OutputFormat) string {
	switch format {
	case config.HALG:
		return formatLongAlgebraic(move, board, true, false)
	case config.ELALG:
		return formatLongAlgebraic(move, board, true, true)
	case config.UCI:
		return formatUCI(move)
	default:
		return formatLongAlgebraic(move, board, false, false)
	}
}

// formatLongAlgebraic formats a move in long algebraic notation.
func formatLongAlgebraic(move engine.Move, board *chess.Board, hyphenated bool, enhanced bool) string {
	switch move.Kind {
	case chess.CastleKingside:
		return "O-O"
	case chess.CastleQueenside:
		return "O-O-O"
	}

	var sb strings.Builder

	// Piece letter for enhanced notation
	piece := board.At(move.From)
	if enhanced && piece != nil && piece.Kind != chess.Pawn {
		sb.WriteByte(piece.Kind.Letter())
	}

	sb.WriteString(move.From.String())

	if hyphenated {
		if board.Occupied(move.To) {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
	}

	sb.WriteString(move.To.String())

	if move.Kind == chess.Promotion {
		sb.WriteString("=Q")
	}

	if captured := board.At(move.To); captured != nil && captured.Kind == chess.King {
		sb.WriteByte('#')
	}

	return sb.String()
}

// formatUCI formats a move in UCI notation.
func formatUCI(move engine.Move) string {
	s := move.From.String() + move.To.String()
	if move.Kind == chess.Promotion {
		s += "q"
	}
	return s
}

// FormatOutcome describes how a game stands.
func FormatOutcome(outcome chess.Outcome, toMove chess.Colour) string {
	if winner, ok := outcome.Winner(); ok {
		return fmt.Sprintf("%s captured the %s king. %s wins.", winner, strings.ToLower(winner.Opposite().String()), winner)
	}
	return fmt.Sprintf("%s to move.", toMove)
}

// FormatSquares lists squares as "a3 c3".
func FormatSquares(squares []chess.Square) string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}
