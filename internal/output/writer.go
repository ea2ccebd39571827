package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/config"
	"github.com/lgbarn/chessbox/internal/engine"
	"github.com/lgbarn/chessbox/internal/snapshot"
)

// GameWriter is the interface for writing a game's current state.
// Different implementations handle different output formats (board, FEN, JSON).
type GameWriter interface {
	// WriteGame writes the game to the output.
	WriteGame(g *engine.Game) error
}

// BoardWriter draws the board followed by a status line.
type BoardWriter struct {
	w    io.Writer
	opts BoardOptions
}

// NewBoardWriter creates a writer that draws boards with the configured
// output settings.
func NewBoardWriter(w io.Writer, cfg *config.Config) *BoardWriter {
	return &BoardWriter{w: w, opts: OptionsFromConfig(cfg.Output)}
}

// WriteGame writes the board and status.
func (bw *BoardWriter) WriteGame(g *engine.Game) error {
	return bw.WriteHighlighted(g, nil)
}

// WriteHighlighted writes the board and status with squares marked.
func (bw *BoardWriter) WriteHighlighted(g *engine.Game, squares []chess.Square) error {
	opts := bw.opts
	opts.Highlights = squares
	if err := RenderBoard(bw.w, g.Board, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(bw.w, FormatOutcome(g.Outcome, g.Board.ToMove))
	return err
}

// FENWriter writes the position as a FEN line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteGame writes the game's FEN.
func (fw *FENWriter) WriteGame(g *engine.Game) error {
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(g.Board))
	return err
}

// JSONWriter writes the game in the snapshot JSON format.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame writes the game as indented JSON.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	return snapshot.FromGame(g).Encode(jw.w)
}
