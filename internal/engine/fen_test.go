package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessbox/internal/chess"
	chesserrors "github.com/lgbarn/chessbox/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return isPiece(b, "e1", chess.White, chess.King) &&
					isPiece(b, "e8", chess.Black, chess.King) &&
					isPiece(b, "e2", chess.White, chess.Pawn) &&
					isPiece(b, "e7", chess.Black, chess.Pawn) &&
					b.ToMove == chess.White &&
					!b.At(sq("h1")).Moved &&
					!b.At(sq("a1")).Moved &&
					b.King(chess.White).CanCastle()
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return isPiece(b, "e4", chess.White, chess.Pawn) &&
					b.At(sq("e2")) == nil &&
					b.ToMove == chess.Black
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(b *chess.Board) bool {
				return isPiece(b, "c5", chess.Black, chess.Pawn) &&
					isPiece(b, "e4", chess.White, chess.Pawn) &&
					b.ToMove == chess.White
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.At(sq("a1")).Moved && b.At(sq("h8")).Moved &&
					!b.King(chess.White).CanCastle() &&
					!b.King(chess.Black).CanCastle()
			},
		},
		{
			name: "only white kingside",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b K - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.At(sq("h1")).Moved && b.At(sq("a1")).Moved &&
					b.King(chess.White).CanCastle() &&
					!b.King(chess.Black).CanCastle()
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && len(b.Pieces()) == 2
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "seven ranks", fen: "8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "short rank", fen: "4k3/8/8/8/8/8/8/4K2 w - - 0 1", wantErr: true},
		{name: "long rank", fen: "4k3/8/8/8/8/8/8/4K4 w - - 0 1", wantErr: true},
		{name: "bad piece", fen: "4k3/8/8/8/8/8/8/4X3 w - - 0 1", wantErr: true},
		{name: "bad side", fen: "4k3/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling", fen: "4k3/8/8/8/8/8/8/4K3 w Z - 0 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidFEN) {
					t.Errorf("NewBoardFromFEN() error = %v, want ErrInvalidFEN", err)
				}
				return
			}
			if err := board.CheckConsistency(); err != nil {
				t.Errorf("CheckConsistency() = %v", err)
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{InitialFEN, InitialFEN},
		{
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
			"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		},
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, BoardToFEN(board)); diff != "" {
				t.Errorf("BoardToFEN() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			moves:   []string{"g1f3"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1",
		},
		{
			name:    "rook move drops one right",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moves:   []string{"a8b8"},
			wantFEN: "1r2k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQk - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			for _, m := range tt.moves {
				playMove(t, board, m)
			}
			if diff := cmp.Diff(tt.wantFEN, BoardToFEN(board)); diff != "" {
				t.Errorf("BoardToFEN() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewInitialBoard_MatchesInitialFEN(t *testing.T) {
	if got := BoardToFEN(NewInitialBoard()); got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q, want %q", got, InitialFEN)
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		want  byte
	}{
		{chess.Piece{Kind: chess.King, Colour: chess.White}, 'K'},
		{chess.Piece{Kind: chess.Knight, Colour: chess.Black}, 'n'},
		{chess.Piece{Kind: chess.Pawn, Colour: chess.Black}, 'p'},
		{chess.Piece{Kind: chess.Queen, Colour: chess.White}, 'Q'},
	}
	for _, tt := range tests {
		if got := PieceLetter(&tt.piece); got != tt.want {
			t.Errorf("PieceLetter(%v %v) = %c, want %c", tt.piece.Colour, tt.piece.Kind, got, tt.want)
		}
		kind, ok := ConvertFENCharToPiece(tt.want)
		if !ok || kind != tt.piece.Kind {
			t.Errorf("ConvertFENCharToPiece(%c) = %v, %v", tt.want, kind, ok)
		}
	}
}
