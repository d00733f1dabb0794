// Package worker runs the service's background jobs on a River queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catalog/internal/config"
	"catalog/pkg/logger"
	"catalog/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background worker pool.
type Options struct {
	// MaxWorkers limits concurrent job execution on the default queue.
	MaxWorkers int
	// TokenPurgeInterval is how often the revoked-token purge job runs.
	TokenPurgeInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:         cfg.Worker.MaxWorkers,
		TokenPurgeInterval: cfg.Worker.TokenPurgeInterval,
	}
}

// Start creates and starts a River client with the service's workers and
// periodic jobs registered. The returned client should be stopped during
// graceful shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	strg storage.Storage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewTokenPurgeWorker(strg))

	periodicJobs := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.TokenPurgeInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return TokenPurgeArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
