package entity

import "time"

// Match - a game registered under an id.
type Match struct {
	ID        string
	Game      *Game
	CreatedAt time.Time
}

func NewMatch(id string, now time.Time) *Match {
	return &Match{
		ID:        id,
		Game:      NewGame(),
		CreatedAt: now,
	}
}

func (that *Match) Snapshot() Snapshot {
	snapshot := that.Game.Snapshot()
	snapshot.MatchID = that.ID

	return snapshot
}
