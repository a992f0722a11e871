package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/repository/postgresql"
)

// MaintenanceJobs holds periodic housekeeping tasks.
type MaintenanceJobs struct {
	jwtRepo postgresql.JWTRepository
}

func NewMaintenanceJobs(jwtRepo postgresql.JWTRepository) *MaintenanceJobs {
	return &MaintenanceJobs{jwtRepo: jwtRepo}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)
}

// PurgeExpiredRefreshTokens deletes refresh tokens past their expiry so the
// table does not grow unbounded.
func (j *MaintenanceJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.jwtRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("Purged expired refresh tokens", "count", deleted)
	}
	return nil
}
