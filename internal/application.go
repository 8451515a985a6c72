package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs a console match until input ends, the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchRepo := repository.NewMatchRepository()
	matchManager := usecase.NewMatchManager(logger, matchRepo)

	session := console.New(logger, matchManager, console.Options{
		ShowHelp:        conf.Console.ShowHelp,
		ShowCoordinates: conf.Console.ShowCoordinates,
	})

	log.Debug("Starting console session")

	if err := session.Run(ctx, in, out); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Debug("Console session finished")

	return nil
}
