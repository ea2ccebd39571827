// Package output renders boards, moves and game status for the terminal.
package output

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/config"
)

// BoardOptions controls how RenderBoard draws a position.
type BoardOptions struct {
	Colour      bool
	Unicode     bool
	Coordinates bool

	// Highlights marks squares, typically a piece's legal destinations.
	Highlights []chess.Square
}

// OptionsFromConfig builds BoardOptions from the output settings.
func OptionsFromConfig(cfg config.OutputConfig) BoardOptions {
	return BoardOptions{
		Colour:      cfg.Colour,
		Unicode:     cfg.Unicode,
		Coordinates: cfg.Coordinates,
	}
}

var glyphs = [2][chess.NumPieceKinds]string{
	{"♙", "♖", "♘", "♗", "♕", "♔"},
	{"♟", "♜", "♞", "♝", "♛", "♚"},
}

// palette holds the colours of one rendering. Each Color is enabled or
// disabled explicitly so output does not depend on whether w is a terminal.
type palette struct {
	white, black, empty, highlight, coord *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		white:     color.New(color.FgHiWhite, color.Bold),
		black:     color.New(color.FgHiRed, color.Bold),
		empty:     color.New(color.FgHiBlack),
		highlight: color.New(color.FgBlack, color.BgHiYellow),
		coord:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.white, p.black, p.empty, p.highlight, p.coord} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// RenderBoard draws the board with rank 8 at the top. Without colour, White
// pieces are uppercase letters, Black lowercase, empty squares '.' and
// highlighted empty squares '*'.
func RenderBoard(w io.Writer, board *chess.Board, opts BoardOptions) error {
	pal := newPalette(opts.Colour)
	marked := make(map[chess.Square]bool, len(opts.Highlights))
	for _, sq := range opts.Highlights {
		marked[sq] = true
	}

	var sb strings.Builder
	for y := 0; y < chess.BoardSize; y++ {
		if opts.Coordinates {
			sb.WriteString(pal.coord.Sprint(string(rune('8' - y))))
			sb.WriteByte(' ')
		}
		for x := 0; x < chess.BoardSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sq := chess.Sq(x, y)
			sb.WriteString(renderSquare(board.At(sq), marked[sq], opts, pal))
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  ")
		for x := 0; x < chess.BoardSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pal.coord.Sprint(string(rune('a' + x))))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderSquare(p *chess.Piece, marked bool, opts BoardOptions, pal palette) string {
	if p == nil {
		if marked {
			return pal.highlight.Sprint("*")
		}
		return pal.empty.Sprint(".")
	}

	text := PieceSymbol(p, opts.Unicode)
	switch {
	case marked:
		return pal.highlight.Sprint(text)
	case p.Colour == chess.White:
		return pal.white.Sprint(text)
	default:
		return pal.black.Sprint(text)
	}
}

// PieceSymbol returns the glyph or FEN-style letter for a piece.
func PieceSymbol(p *chess.Piece, unicode bool) string {
	if unicode {
		return glyphs[p.Colour][p.Kind]
	}
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}
