package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessbox/internal/chess"
	"github.com/lgbarn/chessbox/internal/config"
	"github.com/lgbarn/chessbox/internal/engine"
	"github.com/lgbarn/chessbox/internal/errors"
	"github.com/lgbarn/chessbox/internal/output"
	"github.com/lgbarn/chessbox/internal/snapshot"
)

// commandKind identifies a line typed at the prompt.
type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdMoves
	cmdBoard
	cmdFEN
	cmdJSON
	cmdNew
	cmdSingle
	cmdMulti
	cmdHelp
	cmdQuit
)

var keywords = map[string]commandKind{
	"board":  cmdBoard,
	"fen":    cmdFEN,
	"json":   cmdJSON,
	"new":    cmdNew,
	"single": cmdSingle,
	"multi":  cmdMulti,
	"help":   cmdHelp,
	"?":      cmdHelp,
	"quit":   cmdQuit,
	"exit":   cmdQuit,
}

type command struct {
	kind     commandKind
	from, to chess.Square
}

// parseCommand turns an input line into a command. Moves are written as two
// square names, optionally separated by whitespace or a hyphen.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}

	if fields[0] == "moves" {
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: moves <square>")
		}
		sq, err := parseSquareArg(fields[1])
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdMoves, from: sq}, nil
	}

	if kind, ok := keywords[fields[0]]; ok {
		if len(fields) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments", fields[0])
		}
		return command{kind: kind}, nil
	}

	var from, to string
	switch {
	case len(fields) == 2:
		from, to = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 4:
		from, to = fields[0][:2], fields[0][2:]
	case len(fields) == 1 && len(fields[0]) == 5 && fields[0][2] == '-':
		from, to = fields[0][:2], fields[0][3:]
	default:
		return command{}, fmt.Errorf("unknown command %q (type help)", strings.TrimSpace(line))
	}

	fromSq, err := parseSquareArg(from)
	if err != nil {
		return command{}, err
	}
	toSq, err := parseSquareArg(to)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdMove, from: fromSq, to: toSq}, nil
}

func parseSquareArg(name string) (chess.Square, error) {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	return sq, nil
}

// session drives one game from typed commands.
type session struct {
	cfg   *config.Config
	game  *engine.Game
	store *snapshot.Store
	out   io.Writer
	board *output.BoardWriter
}

func newSession(cfg *config.Config, game *engine.Game, store *snapshot.Store) *session {
	return &session{
		cfg:   cfg,
		game:  game,
		store: store,
		out:   cfg.OutputFile,
		board: output.NewBoardWriter(cfg.OutputFile, cfg),
	}
}

// run reads commands from r until quit or end of input, then saves the game.
func (s *session) run(r io.Reader) error {
	fmt.Fprintf(s.out, "Game %s (%s). Type help for commands.\n", s.game.Name, s.modeName())
	if err := s.board.WriteGame(s.game); err != nil {
		return err
	}
	if s.game.AutomatedTurn() {
		if err := s.playAutomated(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	for s.prompt(); scanner.Scan(); s.prompt() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		if cmd.kind == cmdQuit {
			break
		}
		if err := s.execute(cmd); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	fmt.Fprintln(s.out)
	return s.save()
}

func (s *session) prompt() {
	if s.game.Over() {
		fmt.Fprint(s.out, "game over> ")
		return
	}
	fmt.Fprintf(s.out, "%s> ", strings.ToLower(s.game.Board.ToMove.String()))
}

// execute runs one command. Only output failures are returned; rejected
// moves and bad input are reported to the player.
func (s *session) execute(cmd command) error {
	switch cmd.kind {
	case cmdMove:
		return s.playHuman(cmd.from, cmd.to)
	case cmdMoves:
		return s.showMoves(cmd.from)
	case cmdBoard:
		return s.board.WriteGame(s.game)
	case cmdFEN:
		return output.NewFENWriter(s.out).WriteGame(s.game)
	case cmdJSON:
		return output.NewJSONWriter(s.out).WriteGame(s.game)
	case cmdNew:
		s.game.Reset()
		s.cfg.Logf(config.Verbose, "New game %s", s.game.Name)
		fmt.Fprintf(s.out, "New game %s.\n", s.game.Name)
		return s.board.WriteGame(s.game)
	case cmdSingle, cmdMulti:
		return s.switchMode(cmd.kind == cmdSingle)
	case cmdHelp:
		printHelp(s.out)
	}
	return nil
}

func (s *session) playHuman(from, to chess.Square) error {
	before := s.game.Board.Copy()
	move, outcome, err := s.game.Play(from, to)
	if err != nil {
		s.reportRejection(err)
		return nil
	}
	if err := s.reportMove(move, before, outcome); err != nil {
		return err
	}
	if s.game.AutomatedTurn() {
		if err := s.playAutomated(); err != nil {
			return err
		}
	}
	s.autoSave()
	return nil
}

// playAutomated lets the opponent reply and prints the result.
func (s *session) playAutomated() error {
	before := s.game.Board.Copy()
	move, outcome, err := s.game.AutoMove()
	if stderrors.Is(err, errors.ErrNoLegalMoves) {
		fmt.Fprintf(s.out, "%s has no legal moves. Type new to start another game.\n", s.game.Board.ToMove)
		return nil
	}
	if err != nil {
		s.reportRejection(err)
		return nil
	}
	s.cfg.Logf(config.Verbose, "Opponent played %s", move)
	return s.reportMove(move, before, outcome)
}

func (s *session) reportRejection(err error) {
	switch {
	case errors.IsRejection(err):
		fmt.Fprintf(s.out, "Illegal %v\n", err)
	case stderrors.Is(err, errors.ErrGameOver):
		fmt.Fprintln(s.out, "The game is over. Type new to start another game.")
	default:
		fmt.Fprintf(s.out, "%v\n", err)
	}
}

// reportMove prints a played move, the board and any notices about the new
// position. before is the position the move was played from.
func (s *session) reportMove(move engine.Move, before *chess.Board, outcome chess.Outcome) error {
	mover := before.ToMove
	fmt.Fprintf(s.out, "%s plays %s\n", mover, output.FormatMove(move, before, s.cfg.Output.Format))
	if err := s.board.WriteGame(s.game); err != nil {
		return err
	}

	if outcome.Over() {
		s.cfg.Logf(config.Normal, "Game %s: %s", s.game.Name, outcome)
		fmt.Fprintln(s.out, "Type new to start another game.")
		return nil
	}

	board := s.game.Board
	if king := board.King(board.ToMove); king != nil {
		if attackers := engine.Attackers(board, king.Square, board.ToMove.Opposite()); len(attackers) > 0 {
			squares := make([]chess.Square, len(attackers))
			for i, p := range attackers {
				squares[i] = p.Square
			}
			fmt.Fprintf(s.out, "Check! %s king attacked from %s.\n", board.ToMove, output.FormatSquares(squares))
		}
	}
	if !engine.HasLegalMoves(board) {
		fmt.Fprintf(s.out, "%s has no legal moves.\n", board.ToMove)
	}
	if n := s.game.Repetitions(); n > 1 {
		fmt.Fprintf(s.out, "This position has occurred %d times.\n", n)
	}
	return nil
}

func (s *session) showMoves(from chess.Square) error {
	piece := s.game.Board.At(from)
	if piece == nil || piece.Colour != s.game.Board.ToMove {
		fmt.Fprintf(s.out, "No %s piece on %s.\n", strings.ToLower(s.game.Board.ToMove.String()), from)
		return nil
	}
	squares, err := s.game.LegalDestinations(from)
	if err != nil {
		s.reportRejection(err)
		return nil
	}
	if len(squares) == 0 {
		fmt.Fprintln(s.out, "Selected piece has no available moves.")
		return nil
	}
	if s.cfg.Output.ShowMoves {
		if err := s.board.WriteHighlighted(s.game, squares); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "%s on %s can move to %s\n", piece.Kind, from, output.FormatSquares(squares))
	return nil
}

func (s *session) switchMode(single bool) error {
	if !s.game.SetSinglePlayer(single) {
		fmt.Fprintf(s.out, "Already in %s mode.\n", s.modeName())
		return nil
	}
	s.cfg.Logf(config.Verbose, "Switched to %s mode", s.modeName())
	fmt.Fprintf(s.out, "Switched to %s mode. New game %s.\n", s.modeName(), s.game.Name)
	return s.board.WriteGame(s.game)
}

func (s *session) modeName() string {
	if s.game.SinglePlayer {
		return "single-player"
	}
	return "two-player"
}

func (s *session) autoSave() {
	if !s.cfg.Game.AutoSave {
		return
	}
	if err := s.save(); err != nil {
		s.cfg.Logf(config.Quiet, "%v", err)
	}
}

// save stores the game, or clears the store when the game has ended.
func (s *session) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.game); err != nil {
		return err
	}
	if s.game.Over() {
		s.cfg.Logf(config.Verbose, "Cleared saved game %s", s.store.Path)
	} else {
		s.cfg.Logf(config.Normal, "Saved game %s to %s", s.game.Name, s.store.Path)
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  e2 e4, e2e4   move the piece on e2 to e4
  moves e2      list where the piece on e2 can go
  board         draw the board
  fen           print the position as FEN
  json          print the game as JSON
  new           start a new game
  single        play against the computer (starts a new game)
  multi         two players (starts a new game)
  help          show this help
  quit          save and exit
`)
}
