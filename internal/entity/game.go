package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Status - state of a game. StatusWon and StatusDrawn are terminal.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("Status(%d)", uint8(that))
	}
}

// Move - an accepted play.
type Move struct {
	Player   Player
	Position Position
}

// Game - turn sequencing over a Board. X moves first.
type Game struct {
	board     *Board
	lastMover Player
	status    Status
	winner    Player
	moves     []Move
}

func NewGame() *Game {
	return &Game{
		board:     NewBoard(),
		lastMover: O,
		status:    StatusInProgress,
		moves:     make([]Move, 0, boardCells),
	}
}

// Play - marks position for player. A rejected play leaves the game unchanged.
func (that *Game) Play(player Player, position Position) error {
	if that.IsOver() {
		return apperror.ErrGameOver
	}

	if !player.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	if !position.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, position)
	}

	if player == that.lastMover {
		return fmt.Errorf("%w: %s moved last", apperror.ErrWrongTurn, player)
	}

	if err := that.board.Place(player, position); err != nil {
		return err
	}

	that.lastMover = player
	that.moves = append(that.moves, Move{Player: player, Position: position})

	that.updateStatus()

	return nil
}

func (that *Game) updateStatus() {
	if winner, ok := that.board.Winner(); ok {
		that.winner = winner
		that.status = StatusWon
		return
	}

	if that.board.IsFull() {
		that.status = StatusDrawn
	}
}

// Winner - the winning player, only once the game is won.
func (that *Game) Winner() (Player, bool) {
	if that.status != StatusWon {
		return 0, false
	}

	return that.winner, true
}

func (that *Game) IsOver() bool {
	return that.status != StatusInProgress
}

func (that *Game) Status() Status {
	return that.status
}

// Next - the player due to move; false once the game is over.
func (that *Game) Next() (Player, bool) {
	if that.IsOver() {
		return 0, false
	}

	return that.lastMover.Opponent(), true
}

func (that *Game) LastMover() Player {
	return that.lastMover
}

// Moves - accepted plays in order.
func (that *Game) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// At - the mark at position, if any.
func (that *Game) At(position Position) (Player, bool) {
	return that.board.At(position)
}
