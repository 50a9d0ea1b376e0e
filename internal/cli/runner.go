package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/apiarycd/gg/internal/defaults"
	"github.com/apiarycd/gg/internal/discovery"
	"github.com/apiarycd/gg/internal/metrics"
	"github.com/apiarycd/gg/internal/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Runner struct {
	enumerator *discovery.Enumerator
	aggregator *report.Aggregator
	store      defaults.Store
	exporter   *metrics.Exporter

	out    io.Writer
	logger *zap.Logger
}

func NewRunner(
	enumerator *discovery.Enumerator,
	aggregator *report.Aggregator,
	store defaults.Store,
	exporter *metrics.Exporter,
	out io.Writer,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		enumerator: enumerator,
		aggregator: aggregator,
		store:      store,
		exporter:   exporter,

		out:    out,
		logger: logger,
	}
}

// Run executes the command given by args and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args Args) int {
	cmd, err := Parse(args)
	if err != nil {
		r.logger.Debug("invalid arguments", zap.Error(err))
		r.println(Usage)
		return ExitUsage
	}

	switch cmd.Action {
	case ActionHelp:
		r.println(Usage)
		return ExitOK
	case ActionSetDefault:
		return r.setDefault(ctx, cmd.Path)
	case ActionScanDefault:
		root, storeErr := r.store.Get(ctx)
		if errors.Is(storeErr, defaults.ErrNoDefault) {
			r.println(Usage)
			return ExitUsage
		}
		if storeErr != nil {
			r.logger.Error("failed to read default directory", zap.Error(storeErr))
			r.println("Could not read default directory.")
			return ExitError
		}
		return r.scan(ctx, root)
	case ActionScan:
		return r.scan(ctx, cmd.Path)
	}

	r.println(Usage)
	return ExitUsage
}

func (r *Runner) scan(ctx context.Context, root string) int {
	logger := r.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("root", root),
	)

	logger.Debug("scan started")

	candidates, err := r.enumerator.ListDirectories(root)
	if err != nil {
		logger.Debug("failed to list directories", zap.Error(err))
		r.println(environmentMessage(err))
		return ExitError
	}

	result := r.aggregator.Aggregate(ctx, candidates)

	if err = report.Render(r.out, result); err != nil {
		logger.Error("failed to render report", zap.Error(err))
		return ExitError
	}

	if r.exporter.Enabled() {
		if err = r.exporter.Export(result, time.Now()); err != nil {
			logger.Warn("failed to export metrics", zap.Error(err))
		}
	}

	return ExitOK
}

func (r *Runner) setDefault(ctx context.Context, path string) int {
	if err := r.enumerator.CheckDirectory(path); err != nil {
		r.println(environmentMessage(err))
		return ExitError
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		r.logger.Error("failed to resolve path", zap.String("path", path), zap.Error(err))
		r.println("Could not read directory.")
		return ExitError
	}

	if err = r.store.Set(ctx, abs); err != nil {
		r.logger.Error("failed to store default directory", zap.Error(err))
		r.println("Could not store default directory.")
		return ExitError
	}

	r.println(fmt.Sprintf("Default directory set to %s", abs))
	return ExitOK
}

func (r *Runner) println(line string) {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		r.logger.Error("failed to write output", zap.Error(err))
	}
}
