//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/notification"
	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/domain/vehicle"
	"github.com/MAGNO9/SchoolTrack/internal/notify"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/clock"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStudents struct {
	byToken map[string]student.Student
}

func (f *fakeStudents) FindByToken(_ context.Context, token string) (student.Student, error) {
	st, ok := f.byToken[token]
	if !ok {
		return student.Student{}, errs.Mark(errs.New("unknown token"), errs.ErrNotFound)
	}
	return st, nil
}

// fakeCheckinUoW stages writes and publishes them only when fn returns
// nil, matching the commit-or-rollback contract of the real unit of work.
type fakeCheckinUoW struct {
	failEvent bool
	updates   map[uuid.UUID]student.StatusUpdate
	events    []student.CheckinEvent
}

func (f *fakeCheckinUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.CheckinTx) error) error {
	tx := &fakeCheckinTx{uow: f, updates: map[uuid.UUID]student.StatusUpdate{}}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for id, update := range tx.updates {
		f.updates[id] = update
	}
	f.events = append(f.events, tx.events...)
	return nil
}

type fakeCheckinTx struct {
	uow     *fakeCheckinUoW
	updates map[uuid.UUID]student.StatusUpdate
	events  []student.CheckinEvent
}

func (t *fakeCheckinTx) ApplyStatusUpdate(_ context.Context, id uuid.UUID, update student.StatusUpdate) error {
	t.updates[id] = update
	return nil
}

func (t *fakeCheckinTx) InsertEvent(_ context.Context, ev student.CheckinEvent) error {
	if t.uow.failEvent {
		return errs.Mark(errs.New("insert failed"), errs.ErrPersistence)
	}
	t.events = append(t.events, ev)
	return nil
}

type fakeGuardians struct {
	targets map[uuid.UUID]user.NotificationTarget
}

func (f *fakeGuardians) FindNotificationTarget(_ context.Context, id uuid.UUID) (user.NotificationTarget, error) {
	t, ok := f.targets[id]
	if !ok {
		return user.NotificationTarget{}, errs.Mark(errs.New("not found"), errs.ErrNotFound)
	}
	return t, nil
}

func (f *fakeGuardians) ListGuardianIDs(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id := range f.targets {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeJobs struct {
	fail bool
	jobs []*notification.Job
}

func (f *fakeJobs) Enqueue(job *notification.Job) error {
	if f.fail {
		return errs.Mark(errs.New("queue full"), errs.ErrUpstreamUnavailable)
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type checkinFixture struct {
	driver     user.AuthorizedUser
	guardianID uuid.UUID
	vehicleID  uuid.UUID
	studentID  uuid.UUID
	scannedAt  time.Time
	students   *fakeStudents
	uow        *fakeCheckinUoW
	guardians  *fakeGuardians
	jobs       *fakeJobs
	cmd        commands.CheckinCommands
}

func newCheckinFixture() *checkinFixture {
	f := &checkinFixture{
		driver: user.AuthorizedUser{
			ID:       uuid.New(),
			Name:     "Rosa Dominguez",
			Role:     user.RoleDriver,
			IsActive: true,
		},
		guardianID: uuid.New(),
		vehicleID:  uuid.New(),
		studentID:  uuid.New(),
		scannedAt:  time.Date(2026, 3, 9, 7, 45, 0, 0, time.UTC),
		uow:        &fakeCheckinUoW{updates: map[uuid.UUID]student.StatusUpdate{}},
		jobs:       &fakeJobs{},
	}
	f.students = &fakeStudents{
		byToken: map[string]student.Student{
			"tok-luis": {
				ID:         f.studentID,
				FirstName:  "Luis",
				LastName:   "Hernandez",
				GuardianID: &f.guardianID,
				Token:      "tok-luis",
				Status:     student.StatusHome,
			},
		},
	}
	f.guardians = &fakeGuardians{targets: map[uuid.UUID]user.NotificationTarget{
		f.guardianID: {
			UserID:   f.guardianID,
			Name:     "Maria Hernandez",
			Email:    "maria@example.com",
			IsActive: true,
			Settings: user.NotificationSettings{Push: true, Email: true, Pickup: true, Dropoff: true},
		},
	}}
	vehicles := &fakeVehicles{vehicles: map[uuid.UUID]vehicle.Vehicle{
		f.vehicleID: {
			ID:           f.vehicleID,
			LicensePlate: "XYZ-789",
			Brand:        "Mercedes",
			Model:        "Sprinter",
			DriverID:     &f.driver.ID,
		},
	}}
	f.cmd = commands.NewCheckinCommands(f.students, vehicles, f.uow, f.guardians, f.jobs, slog.Default(), clock.NewMockClock(f.scannedAt))
	return f
}

func (f *checkinFixture) scan(t *testing.T, token string, action student.Action) (commands.ScanResult, error) {
	t.Helper()
	return f.cmd.Scan(context.Background(), f.driver, f.vehicleID, token, action)
}

func TestScanPickupBoardsStudent(t *testing.T) {
	f := newCheckinFixture()

	res, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)

	assert.Equal(t, student.StatusTransport, res.ResultingState)
	assert.Equal(t, "Luis Hernandez", res.Student.FullName())

	update := f.uow.updates[f.studentID]
	assert.Equal(t, student.StatusTransport, update.Status)
	assert.Equal(t, "Mercedes Sprinter (XYZ-789)", update.LastSeenAt)
	require.NotNil(t, update.AssignedVehicleID)
	assert.Equal(t, f.vehicleID, *update.AssignedVehicleID)

	require.Len(t, f.uow.events, 1)
	assert.Equal(t, student.ActionPickup, f.uow.events[0].Action)

	require.Len(t, f.jobs.jobs, 1)
	assert.Equal(t, notify.KindStudentPickup, f.jobs.jobs[0].Kind)
	require.Len(t, f.jobs.jobs[0].Recipients, 1)
	assert.Equal(t, f.guardianID, f.jobs.jobs[0].Recipients[0].UserID)
}

func TestScanDropoffReturnsStudentToSchool(t *testing.T) {
	f := newCheckinFixture()
	st := f.students.byToken["tok-luis"]
	st.Status = student.StatusTransport
	st.AssignedVehicleID = &f.vehicleID
	f.students.byToken["tok-luis"] = st

	res, err := f.scan(t, "tok-luis", student.ActionDropoff)
	require.NoError(t, err)

	assert.Equal(t, student.StatusSchool, res.ResultingState)
	update := f.uow.updates[f.studentID]
	assert.Equal(t, "school", update.LastSeenAt)
	assert.Nil(t, update.AssignedVehicleID)

	require.Len(t, f.jobs.jobs, 1)
	assert.Equal(t, notify.KindStudentDropoff, f.jobs.jobs[0].Kind)
}

func TestScanRepeatedPickupIsAccepted(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)
	st := f.students.byToken["tok-luis"]
	st.Status = student.StatusTransport
	f.students.byToken["tok-luis"] = st

	res, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)
	assert.Equal(t, student.StatusTransport, res.ResultingState)
	assert.Len(t, f.uow.events, 2)
}

func TestScanUnknownTokenIsNotFound(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.scan(t, "tok-nobody", student.ActionPickup)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, f.uow.events)
}

func TestScanRejectsUnassignedVehicle(t *testing.T) {
	f := newCheckinFixture()
	f.driver.ID = uuid.New() // not the assigned driver

	_, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Empty(t, f.uow.events)
	assert.Empty(t, f.jobs.jobs)
}

func TestScanSkipsNoticeWhenGuardianOptedOut(t *testing.T) {
	f := newCheckinFixture()
	target := f.guardians.targets[f.guardianID]
	target.Settings.Pickup = false
	f.guardians.targets[f.guardianID] = target

	_, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)
	assert.Empty(t, f.jobs.jobs)
}

func TestScanSucceedsWithoutGuardian(t *testing.T) {
	f := newCheckinFixture()
	st := f.students.byToken["tok-luis"]
	st.GuardianID = nil
	f.students.byToken["tok-luis"] = st

	res, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)
	assert.Equal(t, student.StatusTransport, res.ResultingState)
	assert.Empty(t, f.jobs.jobs)
}

func TestScanSurfacesAuditWriteFailure(t *testing.T) {
	f := newCheckinFixture()
	f.uow.failEvent = true

	_, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPersistence)

	assert.Empty(t, f.uow.updates)
	assert.Empty(t, f.uow.events)
	assert.Empty(t, f.jobs.jobs)
}

func TestScanRecordsInjectedClockTime(t *testing.T) {
	f := newCheckinFixture()

	res, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)

	assert.Equal(t, f.scannedAt, res.OccurredAt)
	require.Len(t, f.uow.events, 1)
	assert.Equal(t, f.scannedAt, f.uow.events[0].OccurredAt)
}

func TestScanSucceedsWhenQueueFull(t *testing.T) {
	f := newCheckinFixture()
	f.jobs.fail = true

	res, err := f.scan(t, "tok-luis", student.ActionPickup)
	require.NoError(t, err)
	assert.Equal(t, student.StatusTransport, res.ResultingState)
}

func TestAnnounceDelayFansOutToGuardians(t *testing.T) {
	f := newCheckinFixture()
	notices := commands.NewNoticeCommands(f.guardians, f.jobs, slog.Default())

	err := notices.AnnounceDelay(context.Background(), uuid.New(), "Norte 45", 15, "road works")
	require.NoError(t, err)

	require.Len(t, f.jobs.jobs, 1)
	job := f.jobs.jobs[0]
	assert.Equal(t, notify.KindRouteDelay, job.Kind)
	require.Len(t, job.Recipients, 1)
	assert.Equal(t, f.guardianID, job.Recipients[0].UserID)
	assert.WithinDuration(t, time.Now(), job.CreatedAt, time.Minute)
}
