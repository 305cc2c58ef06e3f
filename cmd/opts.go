package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/leonardinius/gocalc/internal/calcerrors"
)

type appOpts struct {
	stdout   io.Writer
	stderr   io.Writer
	reporter calcerrors.ErrReporter
	logger   *slog.Logger
}

var defaultAppOpts = appOpts{
	stdout:   os.Stdout,
	stderr:   os.Stderr,
	reporter: calcerrors.NewErrReporter(os.Stderr),
}

type AppOption func(*appOpts)

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r calcerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(opts *appOpts) {
		opts.logger = logger
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(opts.stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	return &opts
}
