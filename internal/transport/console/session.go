package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errQuit = errors.New("quit")

type matchManager interface {
	CreateMatch(ctx context.Context) (entity.Snapshot, error)
	GetMatch(ctx context.Context, matchID string) (entity.Snapshot, error)
	Moves(ctx context.Context, matchID string) ([]entity.Move, error)
	DeleteMatch(ctx context.Context, matchID string) error

	Play(ctx context.Context, matchID string, player entity.Player, position entity.Position) (entity.Snapshot, error)
	PlayNext(ctx context.Context, matchID string, position entity.Position) (entity.Snapshot, error)
}

type Options struct {
	ShowHelp        bool
	ShowCoordinates bool
}

type handler func(ctx context.Context, args []string) error

// Session - a hot-seat match driven by text commands, one per line.
type Session struct {
	logger  *slog.Logger
	manager matchManager
	options Options

	out     io.Writer
	matchID string

	handlers map[string]handler
}

func New(logger *slog.Logger, manager matchManager, options Options) *Session {
	session := &Session{
		logger:  logger.With("component", "console"),
		manager: manager,
		options: options,

		handlers: make(map[string]handler),
	}

	session.handlers["help"] = session.handleHelp
	session.handlers["board"] = session.handleBoard
	session.handlers["history"] = session.handleHistory
	session.handlers["new"] = session.handleNew
	session.handlers["quit"] = session.handleQuit
	session.handlers["exit"] = session.handleQuit

	return session
}

// Run - reads commands from in until EOF, "quit" or ctx is done.
func (that *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	that.out = out

	if that.options.ShowHelp {
		that.printf("%s\n", helpText)
	}

	if err := that.startMatch(ctx); err != nil {
		return err
	}

	defer func() {
		if err := that.manager.DeleteMatch(context.WithoutCancel(ctx), that.matchID); err != nil {
			log.Error("could not delete match", "error", err)
		}
	}()

	lines, readErr := readLines(ctx, in)

	for {
		that.prompt(ctx)

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			log.Info("session interrupted")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		if err := that.dispatch(ctx, line); err != nil {
			if errors.Is(err, errQuit) || ctx.Err() != nil {
				return nil
			}

			return err
		}
	}
}

// readLines - scans in on its own goroutine so that Run can stop on ctx while
// a read is blocked. readErr receives exactly one value once lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Session) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if handle, ok := that.handlers[fields[0]]; ok {
		return handle(ctx, fields[1:])
	}

	return that.handlePlay(ctx, fields)
}

func (that *Session) startMatch(ctx context.Context) error {
	snapshot, err := that.manager.CreateMatch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	that.matchID = snapshot.MatchID
	that.printSnapshot(snapshot)

	return nil
}

func (that *Session) prompt(ctx context.Context) {
	snapshot, err := that.manager.GetMatch(ctx, that.matchID)
	if err != nil || snapshot.IsOver() {
		that.printf("> ")
		return
	}

	that.printf("%s> ", snapshot.Next)
}

func (that *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
