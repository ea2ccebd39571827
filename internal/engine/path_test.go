package engine

import "testing"

func TestIsPathClear(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		{"adjacent is always clear", InitialFEN, "a1", "a2", true},
		{"file blocked by own pawn", InitialFEN, "a1", "a3", false},
		{"diagonal blocked", InitialFEN, "c1", "e3", false},
		{"open rank", "4k3/8/8/8/R6r/8/8/4K3 w - - 0 1", "a4", "h4", true},
		{"destination not examined", "4k3/8/8/8/R6r/8/8/4K3 w - - 0 1", "a4", "g4", true},
		{"open long diagonal", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "a1", "h8", true},
		{"blocked long diagonal", "4k3/8/8/8/3p4/8/8/B3K3 w - - 0 1", "a1", "h8", false},
		{"backward direction", "4k3/8/8/8/3p4/8/8/B3K3 w - - 0 1", "h8", "a1", false},
		{"knight geometry is not a line", InitialFEN, "b1", "c3", false},
		{"same square", InitialFEN, "e4", "e4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			if got := IsPathClear(board, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
