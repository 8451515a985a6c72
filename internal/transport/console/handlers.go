package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var helpText = heredoc.Doc(`
	Commands:
	  <position>      play for the player to move
	  x|o <position>  play for the given player
	  board           show the board
	  history         list the moves so far
	  new             start a new match
	  quit            leave

	Positions are names (top-left, mid-center, ...), short names
	(tl, tc, tr, ml, mc, mr, bl, bc, br) or "row,col" pairs in 0..2.`)

// rejections are reported to the player, everything else ends the session.
var rejections = []error{
	apperror.ErrGameOver,
	apperror.ErrWrongTurn,
	apperror.ErrPositionOccupied,
	apperror.ErrInvalidPosition,
	apperror.ErrInvalidPlayer,
}

func (that *Session) handlePlay(ctx context.Context, fields []string) error {
	var (
		snapshot entity.Snapshot
		err      error
	)

	player, playerErr := entity.ParsePlayer(fields[0])
	if playerErr == nil && len(fields) > 1 {
		var position entity.Position
		if position, err = entity.ParsePosition(strings.Join(fields[1:], " ")); err == nil {
			snapshot, err = that.manager.Play(ctx, that.matchID, player, position)
		}
	} else {
		var position entity.Position
		if position, err = entity.ParsePosition(strings.Join(fields, " ")); err == nil {
			snapshot, err = that.manager.PlayNext(ctx, that.matchID, position)
		}
	}

	if err != nil {
		if rejection := asRejection(err); rejection != nil {
			that.printf("rejected: %s\n", rejection)
			return nil
		}

		return fmt.Errorf("failed to play: %w", err)
	}

	that.printSnapshot(snapshot)

	return nil
}

func (that *Session) handleBoard(ctx context.Context, _ []string) error {
	snapshot, err := that.manager.GetMatch(ctx, that.matchID)
	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	that.printSnapshot(snapshot)

	return nil
}

func (that *Session) handleHistory(ctx context.Context, _ []string) error {
	moves, err := that.manager.Moves(ctx, that.matchID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	if len(moves) == 0 {
		that.printf("no moves yet\n")
		return nil
	}

	for i, move := range moves {
		that.printf("%d. %s %s\n", i+1, move.Player, move.Position)
	}

	return nil
}

func (that *Session) handleNew(ctx context.Context, _ []string) error {
	if err := that.manager.DeleteMatch(ctx, that.matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return that.startMatch(ctx)
}

func (that *Session) handleHelp(context.Context, []string) error {
	that.printf("%s\n", helpText)
	return nil
}

func (that *Session) handleQuit(context.Context, []string) error {
	return errQuit
}

func asRejection(err error) error {
	for _, rejection := range rejections {
		if errors.Is(err, rejection) {
			return rejection
		}
	}

	return nil
}
