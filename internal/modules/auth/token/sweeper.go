package token

import (
	"context"
	"time"

	"github.com/atomtask/core/internal/pkg/cron"
	"go.uber.org/zap"
)

// SweepJobName identifies the cleanup job on the scheduler.
const SweepJobName = "token_sweep"

// SweepJob returns a scheduler job that hard-deletes token records which can
// no longer validate. Expiry stays logical either way; the sweeper only
// bounds storage growth and is safe to leave disabled.
func (s *Service) SweepJob(interval time.Duration, log *zap.Logger) cron.Job {
	return cron.Job{
		Name:        SweepJobName,
		Description: "delete expired and revoked access tokens",
		Interval:    interval,
		Fn: func(ctx context.Context) error {
			deleted, err := s.repo.DeleteInactiveBefore(ctx, s.now())
			if err != nil {
				return err
			}
			if deleted > 0 {
				log.Info("swept inactive access tokens", zap.Int64("deleted", deleted))
			}
			return nil
		},
	}
}
