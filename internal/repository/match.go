package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Match, error)
}

// memoryMatch keeps matches for the lifetime of the process.
type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string]*entity.Match
}

func NewMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]*entity.Match),
	}
}

func (that *memoryMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to store match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = match

	return nil
}

func (that *memoryMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, id)
	}

	return match, nil
}

func (that *memoryMatch) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, id)
	}

	delete(that.matches, id)

	return nil
}

// List - all stored matches, oldest first.
func (that *memoryMatch) List(ctx context.Context) ([]*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	matches := make([]*entity.Match, 0, len(that.matches))
	for _, match := range that.matches {
		matches = append(matches, match)
	}

	slices.SortFunc(matches, func(a, b *entity.Match) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return matches, nil
}
