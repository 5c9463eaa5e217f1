package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Channel is one delivery transport. Delivery order within a job is fixed:
// push, then email, then sms.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// ChannelOrder is the fixed attempt order across channels.
var ChannelOrder = []Channel{ChannelPush, ChannelEmail, ChannelSMS}

type Status string

const (
	StatusPending           Status = "pending"
	StatusInFlight          Status = "in-flight"
	StatusDelivered         Status = "delivered"
	StatusFailedPermanently Status = "failed-permanently"
)

// Recipient pairs a user with the channels this job must try for them.
// Channels the user has disabled in their settings are skipped at
// delivery time.
type Recipient struct {
	UserID   uuid.UUID
	Channels []Channel
}

func (r Recipient) Wants(ch Channel) bool {
	for _, c := range r.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

const DefaultMaxAttempts = 3

// Job is one unit of outbound messaging work with bounded retry. Attempt
// bookkeeping is guarded so producers can observe a job the dispatcher is
// still working on.
type Job struct {
	ID          uuid.UUID
	Kind        string
	Recipients  []Recipient
	Title       string
	Body        string
	Payload     map[string]any
	MaxAttempts int
	CreatedAt   time.Time

	mu       sync.Mutex
	attempts int
	status   Status
}

func NewJob(kind, title, body string, payload map[string]any, recipients []Recipient, createdAt time.Time) *Job {
	return &Job{
		ID:          uuid.New(),
		Kind:        kind,
		Recipients:  recipients,
		Title:       title,
		Body:        body,
		Payload:     payload,
		MaxAttempts: DefaultMaxAttempts,
		status:      StatusPending,
		CreatedAt:   createdAt,
	}
}

// Begin marks the start of one delivery attempt and returns its number.
func (j *Job) Begin() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusInFlight
	j.attempts++
	return j.attempts
}

// Succeed marks the job delivered.
func (j *Job) Succeed() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusDelivered
}

// Fail records a failed attempt. It reports whether the job still has
// attempts left; once exhausted the job is failed permanently and must
// never be retried again.
func (j *Job) Fail() (retry bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.attempts < j.MaxAttempts {
		j.status = StatusPending
		return true
	}
	j.status = StatusFailedPermanently
	return false
}

func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

func (j *Job) Attempts() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.attempts
}
