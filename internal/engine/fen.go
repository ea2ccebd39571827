package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) (chess.PieceKind, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// PieceLetter returns the FEN letter for a piece: uppercase for White.
func PieceLetter(piece *chess.Piece) byte {
	letter := piece.Kind.Letter()
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement,
// side to move and castling fields are used; en passant and the clocks are
// accepted and ignored. Kings and rooks not named by a castling right are
// marked as moved.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// It is intended for fixed positions known to be valid.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for y, row := range rows {
		x := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			kind, ok := ConvertFENCharToPiece(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}

			piece := &chess.Piece{
				Kind:   kind,
				Colour: colour,
				Square: chess.Sq(x, y),
				Moved:  kind == chess.King || kind == chess.Rook,
			}
			if err := board.Place(piece); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			x++
		}
		if x != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files: %w", '8'-y, x, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights clears the moved flag of each king and rook a
// castling letter refers to. A letter whose pieces are not in place is
// ignored.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var kind chess.MoveKind
		switch c {
		case 'K':
			colour, kind = chess.White, chess.CastleKingside
		case 'Q':
			colour, kind = chess.White, chess.CastleQueenside
		case 'k':
			colour, kind = chess.Black, chess.CastleKingside
		case 'q':
			colour, kind = chess.Black, chess.CastleQueenside
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		king := board.King(colour)
		if king == nil {
			continue
		}
		rookFrom, _ := castleRookSquares(king.Square, kind)
		rook := board.At(rookFrom)
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			continue
		}
		king.Moved = false
		rook.Moved = false
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.At(chess.Sq(x, y))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range []struct {
		letter byte
		colour chess.Colour
		kind   chess.MoveKind
	}{
		{'K', chess.White, chess.CastleKingside},
		{'Q', chess.White, chess.CastleQueenside},
		{'k', chess.Black, chess.CastleKingside},
		{'q', chess.Black, chess.CastleQueenside},
	} {
		if hasCastlingRight(board, right.colour, right.kind) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// hasCastlingRight reports whether the king and the corner rook for kind are
// both unmoved. Attacks and blocking pieces are not considered.
func hasCastlingRight(board *chess.Board, colour chess.Colour, kind chess.MoveKind) bool {
	king := board.King(colour)
	if king == nil || !king.CanCastle() {
		return false
	}
	rookFrom, _ := castleRookSquares(king.Square, kind)
	rook := board.At(rookFrom)
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && !rook.Moved
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
