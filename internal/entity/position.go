package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	boardSide  = 3
	boardCells = boardSide * boardSide
)

// Position - one of the 9 cells, numbered row by row from the top left corner.
type Position uint8

const (
	TopLeft Position = iota
	TopCenter
	TopRight
	MidLeft
	MidCenter
	MidRight
	BottomLeft
	BottomCenter
	BottomRight
)

var positionNames = [boardCells]string{
	"top-left", "top-center", "top-right",
	"mid-left", "mid-center", "mid-right",
	"bottom-left", "bottom-center", "bottom-right",
}

var positionShortNames = [boardCells]string{
	"tl", "tc", "tr",
	"ml", "mc", "mr",
	"bl", "bc", "br",
}

// NewPosition - returns the position at row and col, both in [0,2].
func NewPosition(row, col int) (Position, error) {
	if row < 0 || row >= boardSide || col < 0 || col >= boardSide {
		return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidPosition, row, col)
	}

	return Position(row*boardSide + col), nil
}

// AllPositions - the 9 positions in row order.
func AllPositions() []Position {
	positions := make([]Position, 0, boardCells)
	for i := range boardCells {
		positions = append(positions, Position(i))
	}

	return positions
}

func (that Position) Valid() bool {
	return that < boardCells
}

func (that Position) Row() int {
	return int(that) / boardSide
}

func (that Position) Col() int {
	return int(that) % boardSide
}

func (that Position) String() string {
	if !that.Valid() {
		return fmt.Sprintf("Position(%d)", uint8(that))
	}

	return positionNames[that]
}

// ParsePosition - accepts a name ("top-left", "TopLeft"), a short name ("tl")
// or a "row,col" / "row col" pair.
func ParsePosition(s string) (Position, error) {
	input := strings.ToLower(strings.TrimSpace(s))

	for i := range boardCells {
		if input == positionShortNames[i] || input == positionNames[i] ||
			input == strings.ReplaceAll(positionNames[i], "-", "") {
			return Position(i), nil
		}
	}

	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
	}

	return NewPosition(row, col)
}
