package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func (that *Session) printSnapshot(snapshot entity.Snapshot) {
	that.printf("%s", renderBoard(snapshot, that.options.ShowCoordinates))

	switch snapshot.Status {
	case entity.StatusWon:
		that.printf("%s wins!\n", snapshot.Winner)
	case entity.StatusDrawn:
		that.printf("draw!\n")
	default:
		that.printf("%s to move\n", snapshot.Next)
	}

	if snapshot.IsOver() {
		that.printf("type \"new\" to play again or \"quit\" to leave\n")
	}
}

func renderBoard(snapshot entity.Snapshot, coordinates bool) string {
	var b strings.Builder

	indent := ""
	if coordinates {
		indent = "  "
		b.WriteString("   0   1   2\n")
	}

	for row := range 3 {
		if row > 0 {
			b.WriteString(indent + "---+---+---\n")
		}

		if coordinates {
			b.WriteByte(byte('0' + row))
			b.WriteByte(' ')
		}

		for col := range 3 {
			if col > 0 {
				b.WriteByte('|')
			}

			position, _ := entity.NewPosition(row, col)
			mark := " "
			if player, ok := snapshot.At(position); ok {
				mark = player.String()
			}

			b.WriteString(" " + mark + " ")
		}

		b.WriteByte('\n')
	}

	return b.String()
}
