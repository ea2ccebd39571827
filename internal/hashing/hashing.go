// Package hashing provides position hashing and repetition tracking.
package hashing

import "github.com/lgbarn/chessbox/internal/chess"

// PositionHistory counts how often each position has occurred in a game.
type PositionHistory struct {
	// seen maps a Zobrist hash to the signatures recorded under it
	seen map[uint64][]signature
	// plies is the number of positions recorded
	plies int
}

// signature stores identifying information about a position.
type signature struct {
	weak  uint32
	count int
}

// NewPositionHistory creates an empty history.
func NewPositionHistory() *PositionHistory {
	return &PositionHistory{seen: make(map[uint64][]signature)}
}

// Record adds the board's current position and returns how many times it
// has now occurred, including this one.
func (h *PositionHistory) Record(board *chess.Board) int {
	if board == nil {
		return 0
	}
	hash := GenerateZobristHash(board)
	weak := WeakHash(board)
	h.plies++

	sigs := h.seen[hash]
	for i := range sigs {
		if sigs[i].weak == weak {
			sigs[i].count++
			return sigs[i].count
		}
	}
	h.seen[hash] = append(sigs, signature{weak: weak, count: 1})
	return 1
}

// Count returns how many times the board's position has been recorded.
func (h *PositionHistory) Count(board *chess.Board) int {
	if board == nil {
		return 0
	}
	weak := WeakHash(board)
	for _, sig := range h.seen[GenerateZobristHash(board)] {
		if sig.weak == weak {
			return sig.count
		}
	}
	return 0
}

// Plies returns the number of positions recorded.
func (h *PositionHistory) Plies() int {
	return h.plies
}

// UniqueCount returns the number of distinct positions.
func (h *PositionHistory) UniqueCount() int {
	count := 0
	for _, sigs := range h.seen {
		count += len(sigs)
	}
	return count
}

// Reset clears the history.
func (h *PositionHistory) Reset() {
	h.seen = make(map[uint64][]signature)
	h.plies = 0
}
