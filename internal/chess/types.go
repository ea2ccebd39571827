// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: White moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row a side's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for a side's pawns.
func (c Colour) PromotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the relative material value used by the automated opponent.
// These are the Kaufman values; it plays no part in legality.
func (k PieceKind) Value() float64 {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3.25
	case Rook:
		return 5
	case Queen:
		return 9.75
	case King:
		return 3
	}
	return 0
}

// IsSliding reports whether the kind moves along open lines.
func (k PieceKind) IsSliding() bool {
	return k == Rook || k == Bishop || k == Queen
}

// ParsePieceKind converts a piece name or letter to a kind.
func ParsePieceKind(s string) (PieceKind, bool) {
	for k := Pawn; k < NumPieceKinds; k++ {
		if s == k.String() || (len(s) == 1 && s[0] == k.Letter()) {
			return k, true
		}
	}
	return 0, false
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square is a board coordinate. X is the file (0 is the a-file) and Y is the
// row counted from Black's back rank (0 is rank 8).
type Square struct {
	X int
	Y int
}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// Offset returns the square dx files and dy rows away.
func (s Square) Offset(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	return string([]byte{byte('a' + s.X), byte('8' - s.Y)})
}

// ParseSquare converts an algebraic name such as "e2" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	col, rank := name[0], name[1]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{X: int(col - 'a'), Y: int('8' - rank)}, true
}

// MoveKind categorizes an accepted move.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	Promotion
	CastleKingside
	CastleQueenside
)

// String returns the string representation of a move kind.
func (m MoveKind) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case Promotion:
		return "Promotion"
	case CastleKingside:
		return "CastleKingside"
	case CastleQueenside:
		return "CastleQueenside"
	}
	return "Unknown"
}

// IsCastle reports whether the kind is either castling move.
func (m MoveKind) IsCastle() bool {
	return m == CastleKingside || m == CastleQueenside
}

// Outcome is the terminal state of a game.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWon
	BlackWon
)

// Won returns the outcome where the given side has captured the opposing king.
func Won(c Colour) Outcome {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o != InProgress
}

// Winner returns the winning side, if any.
func (o Outcome) Winner() (Colour, bool) {
	switch o {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	}
	return White, false
}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if c, ok := o.Winner(); ok {
		return c.String() + " won"
	}
	return "In progress"
}
