package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeaveRequested, n.handleLeaveRequested)
	n.dispatcher.Subscribe(events.EventLeaveDecided, n.handleLeaveDecided)
	n.dispatcher.Subscribe(events.EventApplicantStageChanged, n.handleApplicantStageChanged)
	n.dispatcher.Subscribe(events.EventAnnouncementPublished, n.handleAnnouncementPublished)
}

func (n *NotificationService) handleLeaveRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveRequested", zap.String("request_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleLeaveDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveDecided", zap.String("request_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicantStageChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicantStageChanged", zap.String("applicant_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAnnouncementPublished(ctx context.Context, event events.Event) error {
	n.logger.Info("AnnouncementPublished", zap.String("announcement_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
