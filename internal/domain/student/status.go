package student

import (
	"context"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/looplab/fsm"
)

// Status is the tracked whereabouts of one student.
type Status string

const (
	StatusHome      Status = "home"
	StatusSchool    Status = "school"
	StatusTransport Status = "transport"
	StatusAbsent    Status = "absent"
	StatusUnknown   Status = "unknown"
)

// Action is a driver-originated scan action.
type Action string

const (
	ActionPickup  Action = "pickup"
	ActionDropoff Action = "dropoff"
)

// ParseAction validates the wire value of a scan action.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionPickup, ActionDropoff:
		return Action(raw), nil
	default:
		return "", errs.Mark(errs.New("action must be pickup or dropoff"), errs.ErrInvalidInput)
	}
}

var allStatuses = []string{
	string(StatusHome),
	string(StatusSchool),
	string(StatusTransport),
	string(StatusAbsent),
	string(StatusUnknown),
}

// StatusMachine drives the pickup/drop-off transitions for one student.
// Scans are idempotent-accept: a repeated pickup without an intervening
// dropoff transitions transport -> transport rather than being rejected.
// Absent and unknown are side states set administratively; a scan always
// pulls the student back into the home/transport/school cycle.
type StatusMachine struct {
	fsm *fsm.FSM
}

func NewStatusMachine(current Status) *StatusMachine {
	events := fsm.Events{
		{Name: string(ActionPickup), Src: allStatuses, Dst: string(StatusTransport)},
		{Name: string(ActionDropoff), Src: allStatuses, Dst: string(StatusSchool)},
	}
	return &StatusMachine{fsm: fsm.NewFSM(string(current), events, fsm.Callbacks{})}
}

// Apply fires the scan action and returns the resulting status.
func (m *StatusMachine) Apply(ctx context.Context, action Action) (Status, error) {
	if err := m.fsm.Event(ctx, string(action)); err != nil {
		// Same-state transitions are accepted, not errors.
		if _, ok := err.(fsm.NoTransitionError); !ok {
			return Status(m.fsm.Current()), errs.Mark(errs.Wrap(err, "scan transition rejected"), errs.ErrInvalidInput)
		}
	}
	return Status(m.fsm.Current()), nil
}

// Current returns the machine's present status.
func (m *StatusMachine) Current() Status {
	return Status(m.fsm.Current())
}
