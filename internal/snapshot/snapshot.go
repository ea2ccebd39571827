// Package snapshot persists an in-progress game and restores it on startup.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/engine"
	"github.com/lgbarn/chessbox/internal/errors"
	"github.com/lgbarn/chessbox/internal/hashing"
)

// Version is the snapshot format written by this package.
const Version = 1

// Snapshot is the persisted form of a game.
type Snapshot struct {
	Version      int         `json:"version"`
	Name         string      `json:"name,omitempty"`
	ToMove       string      `json:"to_move"` // "white" or "black"
	SinglePlayer bool        `json:"single_player"`
	Pieces       []PieceJSON `json:"pieces"`
	Checksum     string      `json:"checksum"`
}

// PieceJSON is one live piece in a snapshot.
type PieceJSON struct {
	Kind   string `json:"kind"`
	Colour string `json:"colour"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Moved  bool   `json:"moved"`
}

// FromGame captures the board, side to move and mode of a game.
func FromGame(g *engine.Game) *Snapshot {
	s := &Snapshot{
		Version:      Version,
		Name:         g.Name,
		ToMove:       colourName(g.Board.ToMove),
		SinglePlayer: g.SinglePlayer,
		Checksum:     checksum(g.Board),
	}
	for _, p := range g.Board.Pieces() {
		s.Pieces = append(s.Pieces, PieceJSON{
			Kind:   strings.ToLower(p.Kind.String()),
			Colour: colourName(p.Colour),
			X:      p.Square.X,
			Y:      p.Square.Y,
			Moved:  p.Moved,
		})
	}
	return s
}

// Restore rebuilds the game. Options are applied before the recorded name,
// board and mode, so they can only supply what the snapshot does not hold,
// such as the randomizer. Any inconsistency is reported as
// ErrCorruptSnapshot.
func (s *Snapshot) Restore(opts ...engine.GameOption) (*engine.Game, error) {
	board, err := s.board()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		engine.WithBoard(board),
		engine.WithName(s.Name),
		engine.WithSinglePlayer(s.SinglePlayer),
	)
	return engine.NewGame(opts...), nil
}

// board validates the snapshot and builds its position.
func (s *Snapshot) board() (*chess.Board, error) {
	if s.Version != Version {
		return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "unsupported version %d", s.Version)
	}

	board := chess.NewBoard()
	toMove, ok := parseColour(s.ToMove)
	if !ok {
		return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "side to move %q", s.ToMove)
	}
	board.ToMove = toMove

	for i, pj := range s.Pieces {
		kind, ok := parseKind(pj.Kind)
		if !ok {
			return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "piece %d: kind %q", i, pj.Kind)
		}
		colour, ok := parseColour(pj.Colour)
		if !ok {
			return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "piece %d: colour %q", i, pj.Colour)
		}
		p := &chess.Piece{Kind: kind, Colour: colour, Square: chess.Sq(pj.X, pj.Y), Moved: pj.Moved}
		if err := board.Place(p); err != nil {
			return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "piece %d: %v", i, err)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, p := range board.PiecesOf(colour) {
			if p.Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "%s has %d kings", colour, kings)
		}
	}

	if got := checksum(board); got != s.Checksum {
		return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "checksum %s, want %s", s.Checksum, got)
	}
	return board, nil
}

// Encode writes the snapshot as indented JSON.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Decode reads a snapshot written by Encode. It does not validate the
// contents; Restore does.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptSnapshot, "decode: %v", err)
	}
	return &s, nil
}

func checksum(board *chess.Board) string {
	return fmt.Sprintf("%016x", hashing.GenerateZobristHash(board))
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func parseColour(s string) (chess.Colour, bool) {
	switch s {
	case "white":
		return chess.White, true
	case "black":
		return chess.Black, true
	}
	return chess.White, false
}

func parseKind(s string) (chess.PieceKind, bool) {
	for k := chess.Pawn; k < chess.NumPieceKinds; k++ {
		if s == strings.ToLower(k.String()) {
			return k, true
		}
	}
	return 0, false
}
