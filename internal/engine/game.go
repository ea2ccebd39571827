package engine

import (
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/errors"
	"github.com/lgbarn/chessbox/internal/hashing"
)

// Game is a single game session: the board, its outcome, the player mode and
// a human-readable name. A Game is driven by one turn loop and is not safe
// for concurrent use.
type Game struct {
	Name         string
	Board        *chess.Board
	Outcome      chess.Outcome
	SinglePlayer bool

	rnd     Randomizer
	namer   func() string
	history *hashing.PositionHistory
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithSinglePlayer lets the heuristic opponent play Black.
func WithSinglePlayer(on bool) GameOption {
	return func(g *Game) {
		g.SinglePlayer = on
	}
}

// WithRandomizer sets the source used to vary the opponent's scan order.
func WithRandomizer(rnd Randomizer) GameOption {
	return func(g *Game) {
		g.rnd = rnd
	}
}

// WithName fixes the game's name instead of generating one.
func WithName(name string) GameOption {
	return func(g *Game) {
		if name != "" {
			g.Name = name
		}
	}
}

// WithBoard starts the game from an existing position instead of the
// standard layout.
func WithBoard(board *chess.Board) GameOption {
	return func(g *Game) {
		if board != nil {
			g.Board = board
		}
	}
}

// NewGame creates a game in the standard initial position with White to move.
func NewGame(opts ...GameOption) *Game {
	g := &Game{namer: defaultName, history: hashing.NewPositionHistory()}
	for _, opt := range opts {
		opt(g)
	}
	if g.Board == nil {
		g.Board = NewInitialBoard()
	}
	if g.Name == "" {
		g.Name = g.namer()
	}
	g.Outcome = outcomeOf(g.Board)
	g.history.Record(g.Board)
	return g
}

func defaultName() string {
	return petname.Generate(2, "-")
}

// outcomeOf derives the outcome of a position: a side without a king has lost.
func outcomeOf(board *chess.Board) chess.Outcome {
	switch {
	case board.King(chess.White) == nil && board.King(chess.Black) != nil:
		return chess.Won(chess.Black)
	case board.King(chess.Black) == nil && board.King(chess.White) != nil:
		return chess.Won(chess.White)
	}
	return chess.InProgress
}

// Reset discards the current game and starts a fresh one under a new name,
// keeping the player mode.
func (g *Game) Reset() {
	g.Board = NewInitialBoard()
	g.Outcome = chess.InProgress
	g.Name = g.namer()
	g.history.Reset()
	g.history.Record(g.Board)
}

// SetSinglePlayer switches the player mode. Changing the mode starts a new
// game; it reports whether that happened.
func (g *Game) SetSinglePlayer(on bool) bool {
	if g.SinglePlayer == on {
		return false
	}
	g.SinglePlayer = on
	g.Reset()
	return true
}

// Over reports whether a king has been captured.
func (g *Game) Over() bool {
	return g.Outcome.Over()
}

// Validate checks a move without playing it.
func (g *Game) Validate(from, to chess.Square) (Move, error) {
	if g.Over() {
		return Move{}, errors.Reject(errors.ErrGameOver, from, to)
	}
	return Validate(g.Board, from, to)
}

// LegalDestinations lists where the piece on from may move.
func (g *Game) LegalDestinations(from chess.Square) ([]chess.Square, error) {
	if !from.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidCoordinate, "square %s", from)
	}
	if g.Over() {
		return nil, errors.ErrGameOver
	}
	return LegalDestinations(g.Board, from), nil
}

// Play validates and applies a move. Once a king has been captured every
// further move is refused with ErrGameOver until Reset is called.
func (g *Game) Play(from, to chess.Square) (Move, chess.Outcome, error) {
	move, err := g.Validate(from, to)
	if err != nil {
		return Move{}, g.Outcome, err
	}
	outcome, err := Apply(g.Board, move)
	if err != nil {
		return Move{}, g.Outcome, err
	}
	g.Outcome = outcome
	g.history.Record(g.Board)
	return move, outcome, nil
}

// Repetitions returns how many times the current position has occurred in
// this game. Repetition has no effect on play.
func (g *Game) Repetitions() int {
	return g.history.Count(g.Board)
}

// Hash returns the Zobrist hash of the current position.
func (g *Game) Hash() uint64 {
	return hashing.GenerateZobristHash(g.Board)
}

// AutomatedTurn reports whether the heuristic opponent should move now.
func (g *Game) AutomatedTurn() bool {
	return g.SinglePlayer && !g.Over() && g.Board.ToMove == AutomatedSide
}

// AutoMove lets the heuristic opponent choose and play a move for the side
// to move.
func (g *Game) AutoMove() (Move, chess.Outcome, error) {
	if g.Over() {
		return Move{}, g.Outcome, errors.ErrGameOver
	}
	move, err := ChooseMove(g.Board, g.rnd)
	if err != nil {
		return Move{}, g.Outcome, err
	}
	return g.Play(move.From, move.To)
}
