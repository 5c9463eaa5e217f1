package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/notify"

	"github.com/google/uuid"
)

// NoticeCommands produces the fleet-wide guardian notices raised by
// dispatch staff: delays, incidents and route changes.
type NoticeCommands interface {
	AnnounceDelay(ctx context.Context, routeID uuid.UUID, routeName string, delayMinutes int, reason string) error
	AnnounceEmergency(ctx context.Context, incidentType, location, description string) error
	AnnounceRouteChange(ctx context.Context, routeID uuid.UUID, routeName, changes, reason string) error
}

type noticeCommands struct {
	guardians GuardianReader
	jobs      JobEnqueuer
	logger    *slog.Logger
	now       func() time.Time
}

func NewNoticeCommands(guardians GuardianReader, jobs JobEnqueuer, logger *slog.Logger) NoticeCommands {
	return &noticeCommands{
		guardians: guardians,
		jobs:      jobs,
		logger:    logger,
		now:       time.Now,
	}
}

func (c *noticeCommands) AnnounceDelay(ctx context.Context, routeID uuid.UUID, routeName string, delayMinutes int, reason string) error {
	recipients, err := c.recipients(ctx)
	if err != nil {
		return err
	}
	return c.jobs.Enqueue(notify.NewDelayJob(recipients, routeID, routeName, delayMinutes, reason, c.now()))
}

func (c *noticeCommands) AnnounceEmergency(ctx context.Context, incidentType, location, description string) error {
	recipients, err := c.recipients(ctx)
	if err != nil {
		return err
	}
	return c.jobs.Enqueue(notify.NewEmergencyJob(recipients, incidentType, location, description, c.now()))
}

func (c *noticeCommands) AnnounceRouteChange(ctx context.Context, routeID uuid.UUID, routeName, changes, reason string) error {
	recipients, err := c.recipients(ctx)
	if err != nil {
		return err
	}
	return c.jobs.Enqueue(notify.NewRouteChangeJob(recipients, routeID, routeName, changes, reason, c.now()))
}

// recipients fans the notice to every active guardian on every channel;
// per-channel opt-outs are applied at delivery time.
func (c *noticeCommands) recipients(ctx context.Context) ([]notification.Recipient, error) {
	ids, err := c.guardians.ListGuardianIDs(ctx)
	if err != nil {
		return nil, err
	}
	recipients := make([]notification.Recipient, 0, len(ids))
	for _, id := range ids {
		recipients = append(recipients, notification.Recipient{UserID: id, Channels: notification.ChannelOrder})
	}
	return recipients, nil
}
