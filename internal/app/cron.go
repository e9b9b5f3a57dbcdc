package app

import (
	"context"
	"time"

	"github.com/billboard-app/core/internal/config"
	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/modules/content/bills"
	"github.com/billboard-app/core/internal/pkg/congress"
	pkgcron "github.com/billboard-app/core/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, cfg *config.AppConfig, congressClient *congress.Client, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	refreshEvery := time.Duration(cfg.Congress.RefreshMn) * time.Minute
	if refreshEvery <= 0 {
		refreshEvery = 6 * time.Hour
	}
	billsSvc := bills.NewService(db, congressClient)

	sched.Register(pkgcron.Job{
		Name:        "refresh_bills",
		Description: "Pull the latest bills and actions from congress.gov",
		Interval:    refreshEvery,
		Fn: func(ctx context.Context) error {
			if err := billsSvc.Refresh(ctx); err != nil {
				cronLogger.Warn("bill refresh failed", zap.Error(err))
				return err
			}
			cronLogger.Info("bill refresh completed")
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "cleanup_view_history",
		Description: "Delete bill view records older than 90 days",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -90)
			result := db.Unscoped().Where("viewed_at < ?", cutoff).Delete(&models.BillView{})
			if result.Error != nil {
				cronLogger.Warn("view history cleanup failed", zap.Error(result.Error))
				return result.Error
			}
			cronLogger.Info("view history cleanup completed",
				zap.Int64("deleted", result.RowsAffected))
			return nil
		},
	})
}
