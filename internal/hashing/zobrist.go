package hashing

import "github.com/lgbarn/chessbox/internal/chess"

const (
	numSquares = chess.BoardSize * chess.BoardSize
	numColours = 2
	tableSeed  = 0x4368657373426f78
)

var (
	pieceKeys   [numColours][chess.NumPieceKinds][numSquares]uint64
	movedKeys   [numSquares]uint64
	blackToMove uint64
)

func init() {
	state := uint64(tableSeed)
	for c := 0; c < numColours; c++ {
		for k := 0; k < int(chess.NumPieceKinds); k++ {
			for s := 0; s < numSquares; s++ {
				pieceKeys[c][k][s] = splitmix64(&state)
			}
		}
	}
	for s := 0; s < numSquares; s++ {
		movedKeys[s] = splitmix64(&state)
	}
	blackToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next value of the sequence.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func squareIndex(sq chess.Square) int {
	return sq.Y*chess.BoardSize + sq.X
}

// GenerateZobristHash computes a hash of everything that affects play from a
// position: piece placement, each piece's moved flag and the side to move.
// The key table is fixed, so hashes are stable across runs and can be stored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		idx := squareIndex(p.Square)
		hash ^= pieceKeys[p.Colour][p.Kind][idx]
		if p.Moved {
			hash ^= movedKeys[idx]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap placement-only hash, useful as a second opinion when
// two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for _, p := range board.Pieces() {
		code := uint32(p.Colour)*uint32(chess.NumPieceKinds) + uint32(p.Kind) + 1
		hash += code * uint32(squareIndex(p.Square)+1)
	}
	return hash
}
