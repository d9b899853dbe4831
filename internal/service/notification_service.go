package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/notification"
)

// NotificationService sends transactional email and logs lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     notification.Mailer
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer notification.Mailer, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventApplicationApproved, n.handleApplicationApproved)
	n.dispatcher.Subscribe(events.EventStaffActivated, n.handleStaffActivated)
	n.dispatcher.Subscribe(events.EventClientServed, n.handleClientServed)
	n.dispatcher.Subscribe(events.EventBusinessDeleted, n.handleBusinessDeleted)
}

// SendActivationEmail mails the activation link, bounded by the configured
// timeout. The caller decides what a failure means.
func (n *NotificationService) SendActivationEmail(ctx context.Context, to, name, link string, expiresAt time.Time) error {
	if n.mailer == nil {
		return nil
	}
	email, err := notification.ActivationEmail(to, name, link, expiresAt.Format("02/01/2006"))
	if err != nil {
		return err
	}
	sendCtx, cancel := context.WithTimeout(ctx, n.cfg.Timeout())
	defer cancel()
	return n.mailer.Send(sendCtx, email)
}

func (n *NotificationService) handleApplicationApproved(_ context.Context, event events.Event) error {
	n.logger.Info("ApplicationApproved", zap.String("application_id", event.SubjectID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStaffActivated(_ context.Context, event events.Event) error {
	n.logger.Info("StaffActivated", zap.String("staff_id", event.SubjectID))
	return nil
}

func (n *NotificationService) handleClientServed(_ context.Context, event events.Event) error {
	n.logger.Info("ClientServed",
		zap.String("client_id", event.SubjectID),
		zap.String("staff_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleBusinessDeleted(_ context.Context, event events.Event) error {
	n.logger.Info("BusinessDeleted", zap.String("business_id", event.SubjectID), zap.Any("payload", event.Payload))
	return nil
}
