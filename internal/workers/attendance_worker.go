package workers

import (
	"context"
	"time"

	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/metrics"
	"studiofit_backend/internal/services"
)

// AttendanceWorker periodically flips still-registered members of finished
// sessions to absent. It is optional; deployments driving the sweep through
// the admin endpoint leave it disabled.
type AttendanceWorker struct {
	classes  *services.ClassService
	grace    time.Duration
	interval time.Duration
}

func NewAttendanceWorker(classes *services.ClassService, grace, interval time.Duration) *AttendanceWorker {
	return &AttendanceWorker{classes: classes, grace: grace, interval: interval}
}

// Start runs the sweep loop until the context is cancelled.
func (w *AttendanceWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *AttendanceWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("attendance worker stopped")
			return
		case <-ticker.C:
			marked, err := w.classes.MarkAbsentees(time.Now(), w.grace)
			if err != nil {
				logger.Error("attendance sweep failed", "error", err.Error())
				continue
			}
			metrics.ObserveAbsentSweep(marked)
			if marked > 0 {
				logger.Info("attendance sweep marked absentees", "count", marked)
			}
		}
	}
}
