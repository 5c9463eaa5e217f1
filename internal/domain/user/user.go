package user

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDriver   Role = "driver"
	RoleGuardian Role = "guardian"
)

func (r Role) String() string { return string(r) }

// AuthorizedUser is the read model resolved from a bearer credential.
type AuthorizedUser struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     Role
	IsActive bool
}

// NotificationSettings are the per-channel opt-ins on a guardian account,
// plus the per-action toggles for check-in notices.
type NotificationSettings struct {
	Push    bool
	Email   bool
	SMS     bool
	Pickup  bool
	Dropoff bool
}

// NotificationTarget is everything the dispatcher needs to reach one user.
type NotificationTarget struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Phone    string
	IsActive bool
	Settings NotificationSettings
}
