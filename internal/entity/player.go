package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player - one of the two marks. The zero value is not a player.
type Player uint8

const (
	X Player = iota + 1
	O
)

func (that Player) Valid() bool {
	return that == X || that == O
}

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return that
	}
}

func (that Player) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

// ParsePlayer - accepts "x" or "o" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}
