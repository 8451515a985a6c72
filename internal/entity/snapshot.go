package entity

// Snapshot - a read-only copy of a game's state.
type Snapshot struct {
	MatchID     string
	Cells       [boardCells]Player // zero value for an empty cell
	Status      Status
	Winner      Player
	Next        Player
	Moves       int
	WinningLine *Line
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Status: that.status,
		Moves:  len(that.moves),
	}

	for position, player := range that.board.cells {
		snapshot.Cells[position] = player
	}

	if winner, ok := that.Winner(); ok {
		snapshot.Winner = winner
	}

	if next, ok := that.Next(); ok {
		snapshot.Next = next
	}

	if line, ok := that.board.WinningLine(); ok {
		snapshot.WinningLine = &line
	}

	return snapshot
}

func (that Snapshot) IsOver() bool {
	return that.Status != StatusInProgress
}

// At - the mark at position, if any.
func (that Snapshot) At(position Position) (Player, bool) {
	if !position.Valid() {
		return 0, false
	}

	player := that.Cells[position]

	return player, player.Valid()
}
