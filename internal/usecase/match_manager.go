package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Match, error)
}

// MatchManager serializes access to each match. entity.Game itself is not safe
// for concurrent use, so every read or write of a match happens under its lock.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo

	newID func() string
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match-manager"),
		matchRepo: matchRepo,

		newID: uuid.NewString,
		now:   time.Now,

		locks: make(map[string]*sync.Mutex),
	}
}

func (that *MatchManager) CreateMatch(ctx context.Context) (entity.Snapshot, error) {
	log := that.logger.With("method", "CreateMatch")

	match := entity.NewMatch(that.newID(), that.now())

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match created", "match_id", match.ID)

	return match.Snapshot(), nil
}

// Play - makes a move for player in the given match.
func (that *MatchManager) Play(ctx context.Context, matchID string, player entity.Player, position entity.Position) (entity.Snapshot, error) {
	unlock := that.lock(matchID)
	defer unlock()

	return that.play(ctx, matchID, func(*entity.Game) entity.Player { return player }, position)
}

// PlayNext - makes a move for whichever player is due, as in hot-seat play.
func (that *MatchManager) PlayNext(ctx context.Context, matchID string, position entity.Position) (entity.Snapshot, error) {
	unlock := that.lock(matchID)
	defer unlock()

	return that.play(ctx, matchID, func(game *entity.Game) entity.Player {
		next, _ := game.Next()
		return next
	}, position)
}

func (that *MatchManager) play(
	ctx context.Context,
	matchID string,
	mover func(*entity.Game) entity.Player,
	position entity.Position,
) (entity.Snapshot, error) {
	log := that.logger.With("method", "Play", "match_id", matchID)

	match, err := that.getMatchByID(ctx, matchID)
	if err != nil {
		return entity.Snapshot{}, err
	}

	player := mover(match.Game)

	if err = match.Game.Play(player, position); err != nil {
		log.Debug("move rejected", "player", player.String(), "position", position.String(), "error", err)
		return entity.Snapshot{}, fmt.Errorf("failed to play: %w", err)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to update match: %w", err)
	}

	log.Debug("move accepted", "player", player.String(), "position", position.String())

	snapshot := match.Snapshot()
	switch snapshot.Status {
	case entity.StatusWon:
		log.Info("match won", "winner", snapshot.Winner.String(), "moves", snapshot.Moves)
	case entity.StatusDrawn:
		log.Info("match drawn", "moves", snapshot.Moves)
	}

	return snapshot, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, matchID string) (entity.Snapshot, error) {
	unlock := that.lock(matchID)
	defer unlock()

	match, err := that.getMatchByID(ctx, matchID)
	if err != nil {
		return entity.Snapshot{}, err
	}

	return match.Snapshot(), nil
}

// Moves - accepted moves of a match in order.
func (that *MatchManager) Moves(ctx context.Context, matchID string) ([]entity.Move, error) {
	unlock := that.lock(matchID)
	defer unlock()

	match, err := that.getMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	return match.Game.Moves(), nil
}

func (that *MatchManager) ListMatches(ctx context.Context) ([]entity.Snapshot, error) {
	matches, err := that.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	snapshots := make([]entity.Snapshot, 0, len(matches))
	for _, match := range matches {
		unlock := that.lock(match.ID)
		snapshots = append(snapshots, match.Snapshot())
		unlock()
	}

	return snapshots, nil
}

func (that *MatchManager) DeleteMatch(ctx context.Context, matchID string) error {
	log := that.logger.With("method", "DeleteMatch", "match_id", matchID)

	unlock := that.lock(matchID)
	defer unlock()

	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		if errors.Is(err, apperror.ErrMatchNotFound) {
			that.forget(matchID)
		}

		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.forget(matchID)

	log.Info("match deleted")

	return nil
}

func (that *MatchManager) getMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrMatchNotFound) {
		that.forget(id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *MatchManager) lock(matchID string) func() {
	that.mu.Lock()
	lock, ok := that.locks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[matchID] = lock
	}
	that.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

// forget - drops the lock of a match that no longer exists. Callers holding
// it finish normally; the next caller gets a fresh lock.
func (that *MatchManager) forget(matchID string) {
	that.mu.Lock()
	delete(that.locks, matchID)
	that.mu.Unlock()
}
