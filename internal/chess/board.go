package chess

import "fmt"

// Piece is a live piece on the board. Pieces are owned by a Board and mutated
// in place when they move.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	Square Square

	// Moved is set the first time the piece leaves its square. For kings and
	// rooks it is the castling eligibility flag.
	Moved bool
}

// CanCastle reports whether the piece is a king that has never moved.
func (p *Piece) CanCastle() bool {
	return p.Kind == King && !p.Moved
}

// String returns a short description such as "White Knight on g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Square)
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// squares[x][y] references the piece standing on (x, y), if any.
	squares [BoardSize][BoardSize]*Piece

	// pieces is the roster of live pieces in placement order.
	pieces []*Piece

	// Who has the next move.
	ToMove Colour
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < BoardSize; x++ {
		b.mustPlace(&Piece{Kind: backRank[x], Colour: Black, Square: Sq(x, 0)})
		b.mustPlace(&Piece{Kind: Pawn, Colour: Black, Square: Sq(x, 1)})
	}
	for x := 0; x < BoardSize; x++ {
		b.mustPlace(&Piece{Kind: Pawn, Colour: White, Square: Sq(x, 6)})
		b.mustPlace(&Piece{Kind: backRank[x], Colour: White, Square: Sq(x, 7)})
	}

	b.ToMove = White
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.pieces = nil
}

// At returns the piece on the given square, or nil if it is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.X][sq.Y]
}

// Occupied reports whether a piece stands on the square.
func (b *Board) Occupied(sq Square) bool {
	return b.At(sq) != nil
}

// Place adds a piece to the board at its recorded square.
func (b *Board) Place(p *Piece) error {
	if p == nil {
		return fmt.Errorf("place: nil piece")
	}
	if !p.Square.Valid() {
		return fmt.Errorf("place %s %s: square %s is off the board", p.Colour, p.Kind, p.Square)
	}
	if occupant := b.At(p.Square); occupant != nil {
		return fmt.Errorf("place %s %s: %s is occupied by %s", p.Colour, p.Kind, p.Square, occupant)
	}
	b.squares[p.Square.X][p.Square.Y] = p
	b.pieces = append(b.pieces, p)
	return nil
}

func (b *Board) mustPlace(p *Piece) {
	if err := b.Place(p); err != nil {
		panic(err)
	}
}

// Remove takes the piece on sq off the board and out of the roster.
// It returns the removed piece, or nil if the square was empty.
func (b *Board) Remove(sq Square) *Piece {
	p := b.At(sq)
	if p == nil {
		return nil
	}
	b.squares[sq.X][sq.Y] = nil
	for i, q := range b.pieces {
		if q == p {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			break
		}
	}
	return p
}

// Relocate moves the piece on from to the empty square to and marks it moved.
func (b *Board) Relocate(from, to Square) error {
	p := b.At(from)
	if p == nil {
		return fmt.Errorf("relocate %s: square is empty", from)
	}
	if !to.Valid() {
		return fmt.Errorf("relocate %s: square %s is off the board", from, to)
	}
	if occupant := b.At(to); occupant != nil {
		return fmt.Errorf("relocate %s: %s is occupied by %s", from, to, occupant)
	}
	b.squares[from.X][from.Y] = nil
	b.squares[to.X][to.Y] = p
	p.Square = to
	p.Moved = true
	return nil
}

// Pieces returns the roster of live pieces in placement order.
// The returned slice is a copy; the pieces are shared.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns the live pieces of one colour in roster order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// King returns the king of the given colour, or nil if it has been captured.
func (b *Board) King(colour Colour) *Piece {
	for _, p := range b.pieces {
		if p.Kind == King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// Copy creates a deep copy of the board. Pieces in the copy are new values,
// so mutating one board never affects the other.
func (b *Board) Copy() *Board {
	newBoard := &Board{ToMove: b.ToMove}
	newBoard.pieces = make([]*Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		q := *p
		newBoard.squares[q.Square.X][q.Square.Y] = &q
		newBoard.pieces = append(newBoard.pieces, &q)
	}
	return newBoard
}

// CheckConsistency verifies that the grid and the roster describe the same
// set of pieces: every roster piece sits on the cell that references it, and
// every occupied cell holds a roster piece.
func (b *Board) CheckConsistency() error {
	seen := make(map[*Piece]bool, len(b.pieces))
	for _, p := range b.pieces {
		if seen[p] {
			return fmt.Errorf("%s is listed twice", p)
		}
		seen[p] = true
		if !p.Square.Valid() {
			return fmt.Errorf("%s is off the board", p)
		}
		if b.squares[p.Square.X][p.Square.Y] != p {
			return fmt.Errorf("%s is not on its recorded square", p)
		}
	}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if p := b.squares[x][y]; p != nil && !seen[p] {
				return fmt.Errorf("%s on %s is missing from the roster", p.Kind, Sq(x, y))
			}
		}
	}
	return nil
}
