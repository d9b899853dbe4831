package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/observability"
	"github.com/spec-kit/fotos-express/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to the event
// dispatcher.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// RunMetricsReporter logs the request and error counters every interval until
// ctx is cancelled. The returned channel is closed once the loop exits.
func RunMetricsReporter(ctx context.Context, metrics *observability.Metrics, logger *zap.Logger, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snap := metrics.Snapshot()
				if len(snap.Requests) == 0 && len(snap.Errors) == 0 {
					continue
				}
				logger.Info("request metrics",
					zap.Any("requests", snap.Requests),
					zap.Any("errors", snap.Errors),
					zap.Any("avg_latency", snap.Latency))
			}
		}
	}()
	return done
}
