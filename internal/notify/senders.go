package notify

import (
	"context"
	"log/slog"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
)

// The concrete transports (FCM/APNs, SES, Twilio and friends) live outside
// this core. These senders log the delivery so the pipeline is observable
// end to end; swapping in a real provider is a drop-in Sender.

type PushSender struct {
	logger *slog.Logger
}

func NewPushSender(logger *slog.Logger) *PushSender {
	return &PushSender{logger: logger}
}

func (s *PushSender) Channel() notification.Channel { return notification.ChannelPush }

func (s *PushSender) Send(_ context.Context, target user.NotificationTarget, job *notification.Job) error {
	s.logger.Info("push notification sent",
		"user_id", target.UserID, "title", job.Title, "kind", job.Kind)
	return nil
}

type EmailSender struct {
	logger *slog.Logger
}

func NewEmailSender(logger *slog.Logger) *EmailSender {
	return &EmailSender{logger: logger}
}

func (s *EmailSender) Channel() notification.Channel { return notification.ChannelEmail }

func (s *EmailSender) Send(_ context.Context, target user.NotificationTarget, job *notification.Job) error {
	s.logger.Info("email notification sent",
		"email", target.Email, "title", job.Title, "kind", job.Kind)
	return nil
}

type SMSSender struct {
	logger *slog.Logger
}

func NewSMSSender(logger *slog.Logger) *SMSSender {
	return &SMSSender{logger: logger}
}

func (s *SMSSender) Channel() notification.Channel { return notification.ChannelSMS }

func (s *SMSSender) Send(_ context.Context, target user.NotificationTarget, job *notification.Job) error {
	s.logger.Info("sms notification sent",
		"phone", target.Phone, "kind", job.Kind)
	return nil
}
