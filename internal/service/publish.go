package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/events"
)

// publish emits event after a successful write. Handler failures are logged
// and never reach the caller.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("subject_id", event.SubjectID),
			zap.Error(err))
	}
}
