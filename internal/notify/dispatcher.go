// Package notify decides what to send, to whom and when, and retries
// failed attempts. The transports themselves (push/email/SMS providers)
// are external collaborators behind the Sender port.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/metrics"

	"github.com/google/uuid"
)

// TargetReader resolves a recipient id to contact details and channel
// opt-ins.
type TargetReader interface {
	FindNotificationTarget(ctx context.Context, id uuid.UUID) (user.NotificationTarget, error)
}

// Sender delivers one job to one target over one channel.
type Sender interface {
	Channel() notification.Channel
	Send(ctx context.Context, target user.NotificationTarget, job *notification.Job) error
}

// Dispatcher owns the FIFO work queue and the single processing loop.
// Jobs are processed to completion one at a time; a failed job re-enters
// at the tail with exponential backoff until its attempts are exhausted.
type Dispatcher struct {
	queue   chan *notification.Job
	targets TargetReader
	senders map[notification.Channel]Sender
	cfg     config.DispatcherConfig
	logger  *slog.Logger
}

func NewDispatcher(targets TargetReader, senders []Sender, cfg config.DispatcherConfig, logger *slog.Logger) *Dispatcher {
	byChannel := make(map[notification.Channel]Sender, len(senders))
	for _, s := range senders {
		byChannel[s.Channel()] = s
	}
	return &Dispatcher{
		queue:   make(chan *notification.Job, cfg.QueueSize),
		targets: targets,
		senders: byChannel,
		cfg:     cfg,
		logger:  logger,
	}
}

// Enqueue offers a job without blocking the producer. Producers treat the
// enqueue as fire-and-forget; a full queue is reported back but never
// retried by the producer.
func (d *Dispatcher) Enqueue(job *notification.Job) error {
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = d.cfg.MaxAttempts
	}
	select {
	case d.queue <- job:
		return nil
	default:
		metrics.NotificationJobs.WithLabelValues("dropped").Inc()
		return errs.Mark(errs.New("notification queue full"), errs.ErrUpstreamUnavailable)
	}
}

// Run drains the queue until ctx is cancelled. In-flight jobs are not
// cancellable once dequeued; cancellation only stops picking up new work.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.queue:
			d.process(ctx, job)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, job *notification.Job) {
	if len(job.Recipients) == 0 {
		metrics.NotificationJobs.WithLabelValues("dropped").Inc()
		return
	}

	attempt := job.Begin()

	if err := d.deliver(ctx, job); err != nil {
		if job.Fail() {
			d.requeue(ctx, job, attempt)
			return
		}
		metrics.NotificationJobs.WithLabelValues("failed_permanently").Inc()
		d.logger.Error("notification failed permanently",
			"job_id", job.ID, "kind", job.Kind, "attempts", attempt, "error", err)
		return
	}

	job.Succeed()
	metrics.NotificationJobs.WithLabelValues("delivered").Inc()
}

// deliver attempts every enabled channel for every recipient. One channel
// failing never blocks the remaining channels of the same job; the first
// error is kept to decide the retry.
func (d *Dispatcher) deliver(ctx context.Context, job *notification.Job) error {
	var firstErr error

	for _, recipient := range job.Recipients {
		target, err := d.targets.FindNotificationTarget(ctx, recipient.UserID)
		if err != nil {
			d.logger.Warn("notification recipient lookup failed",
				"job_id", job.ID, "user_id", recipient.UserID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !target.IsActive {
			continue
		}

		for _, ch := range notification.ChannelOrder {
			if !recipient.Wants(ch) || !channelEnabled(target, ch) {
				continue
			}
			sender, ok := d.senders[ch]
			if !ok {
				continue
			}
			if err := sender.Send(ctx, target, job); err != nil {
				metrics.NotificationAttempts.WithLabelValues(string(ch), "failure").Inc()
				d.logger.Warn("notification channel delivery failed",
					"job_id", job.ID, "channel", ch, "user_id", target.UserID, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			metrics.NotificationAttempts.WithLabelValues(string(ch), "success").Inc()
		}
	}
	return firstErr
}

// requeue re-enters the job at the tail after an exponential backoff.
func (d *Dispatcher) requeue(ctx context.Context, job *notification.Job, attempt int) {
	delay := d.cfg.RetryBackoff << (attempt - 1)
	timer := time.NewTimer(delay)
	go func() {
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			if err := d.Enqueue(job); err != nil {
				d.logger.Error("notification requeue failed", "job_id", job.ID, "error", err)
			}
		}
	}()
}

func channelEnabled(target user.NotificationTarget, ch notification.Channel) bool {
	switch ch {
	case notification.ChannelPush:
		return target.Settings.Push
	case notification.ChannelEmail:
		return target.Settings.Email && target.Email != ""
	case notification.ChannelSMS:
		return target.Settings.SMS && target.Phone != ""
	default:
		return false
	}
}
