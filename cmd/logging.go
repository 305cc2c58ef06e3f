package cmd

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger builds the app logger: a text handler on w plus, when logPath is
// set, a second text handler appending to that file. The file handler always
// records at debug level; the terminal handler stays at warn unless debug is
// on.
func newLogger(w io.Writer, debug bool, logPath string) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closer := func() error { return nil }
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
