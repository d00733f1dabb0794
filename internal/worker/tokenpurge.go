package worker

import (
	"context"
	"fmt"
	"time"

	"catalog/pkg/logger"
	"catalog/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// TokenPurgeArgs is the payload of the periodic revoked-token purge job. It
// carries no data; the job always purges everything that has expired.
type TokenPurgeArgs struct{}

// Kind implements river.JobArgs.
func (TokenPurgeArgs) Kind() string { return "token_purge" }

// TokenPurgeWorker removes revocation entries whose tokens have expired. An
// expired token fails verification on its own, so keeping its jti on the
// blocklist serves no purpose.
type TokenPurgeWorker struct {
	river.WorkerDefaults[TokenPurgeArgs]

	storage storage.TokenStorage
}

// NewTokenPurgeWorker constructs a TokenPurgeWorker using the provided storage.
func NewTokenPurgeWorker(strg storage.TokenStorage) *TokenPurgeWorker {
	return &TokenPurgeWorker{storage: strg}
}

// Work deletes all revocation entries past their expiry.
func (w *TokenPurgeWorker) Work(ctx context.Context, job *river.Job[TokenPurgeArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	purged, err := w.storage.PurgeExpiredTokens(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "error purging expired tokens", zap.Error(err))

		return fmt.Errorf("could not purge expired tokens: %w", err)
	}

	logger.Info(ctx, "purged expired revoked tokens", zap.Int64("purged", purged))

	return nil
}
