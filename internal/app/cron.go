package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mood-journal/core/internal/models"
	pkgcron "github.com/mood-journal/core/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const retentionDays = 30

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "purge_deleted_rows",
		Description: "permanently remove soft-deleted rows past the retention window",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			targets := []interface{}{
				&models.JournalEntryModel{},
				&models.AnalysisModel{},
				&models.SentimentRecordModel{},
			}
			var purged int64
			for _, model := range targets {
				result := db.WithContext(ctx).Unscoped().
					Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
					Delete(model)
				if result.Error != nil {
					cronLogger.Warn("retention purge failed", zap.Error(result.Error))
					return result.Error
				}
				purged += result.RowsAffected
			}
			if purged > 0 {
				cronLogger.Info(fmt.Sprintf("retention purge removed %d rows", purged))
			}
			return nil
		},
	})
}
