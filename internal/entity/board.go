package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Line - three positions that win the game when held by one player.
type Line [3]Position

// Lines - the 8 winning lines: rows, columns, then diagonals.
var Lines = [8]Line{
	{TopLeft, TopCenter, TopRight},
	{MidLeft, MidCenter, MidRight},
	{BottomLeft, BottomCenter, BottomRight},
	{TopLeft, MidLeft, BottomLeft},
	{TopCenter, MidCenter, BottomCenter},
	{TopRight, MidRight, BottomRight},
	{TopLeft, MidCenter, BottomRight},
	{TopRight, MidCenter, BottomLeft},
}

// Board - the record of marks. A position, once played, is never overwritten.
type Board struct {
	cells map[Position]Player
}

func NewBoard() *Board {
	return &Board{
		cells: make(map[Position]Player, boardCells),
	}
}

// Place - records the player's mark at position.
func (that *Board) Place(player Player, position Position) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	if !position.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, position)
	}

	if _, ok := that.cells[position]; ok {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, position)
	}

	that.cells[position] = player

	return nil
}

// At - returns the mark at position, if any.
func (that *Board) At(position Position) (Player, bool) {
	player, ok := that.cells[position]
	return player, ok
}

// Len - number of occupied positions.
func (that *Board) Len() int {
	return len(that.cells)
}

func (that *Board) IsFull() bool {
	return len(that.cells) == boardCells
}

// WinningLine - returns the first complete line in Lines order.
func (that *Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		if that.isComplete(line) {
			return line, true
		}
	}

	return Line{}, false
}

// Winner - returns the player holding a complete line.
func (that *Board) Winner() (Player, bool) {
	line, ok := that.WinningLine()
	if !ok {
		return 0, false
	}

	return that.cells[line[0]], true
}

func (that *Board) HasWinner() bool {
	_, ok := that.WinningLine()
	return ok
}

func (that *Board) isComplete(line Line) bool {
	a, okA := that.cells[line[0]]
	b, okB := that.cells[line[1]]
	c, okC := that.cells[line[2]]

	return okA && okB && okC && a == b && b == c
}
