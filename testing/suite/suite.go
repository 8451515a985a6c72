package suite

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(&testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// testWriter routes log lines to t.Log so they only show up for failed or verbose runs.
type testWriter struct {
	t *testing.T
}

func (that *testWriter) Write(p []byte) (int, error) {
	that.t.Helper()
	that.t.Log(strings.TrimRight(string(p), "\n"))

	return len(p), nil
}
