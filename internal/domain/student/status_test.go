//go:build unit

package student_test

import (
	"context"
	"testing"

	"github.com/MAGNO9/SchoolTrack/internal/domain/student"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupBoardsStudent(t *testing.T) {
	m := student.NewStatusMachine(student.StatusHome)

	got, err := m.Apply(context.Background(), student.ActionPickup)
	require.NoError(t, err)
	assert.Equal(t, student.StatusTransport, got)
}

func TestDropoffDeliversToSchool(t *testing.T) {
	m := student.NewStatusMachine(student.StatusTransport)

	got, err := m.Apply(context.Background(), student.ActionDropoff)
	require.NoError(t, err)
	assert.Equal(t, student.StatusSchool, got)
}

func TestRepeatedPickupIsAccepted(t *testing.T) {
	m := student.NewStatusMachine(student.StatusHome)

	_, err := m.Apply(context.Background(), student.ActionPickup)
	require.NoError(t, err)

	got, err := m.Apply(context.Background(), student.ActionPickup)
	require.NoError(t, err)
	assert.Equal(t, student.StatusTransport, got)
}

func TestScanRecoversFromSideStates(t *testing.T) {
	for _, start := range []student.Status{student.StatusAbsent, student.StatusUnknown} {
		m := student.NewStatusMachine(start)

		got, err := m.Apply(context.Background(), student.ActionPickup)
		require.NoError(t, err)
		assert.Equal(t, student.StatusTransport, got)
	}
}

func TestParseAction(t *testing.T) {
	action, err := student.ParseAction("pickup")
	require.NoError(t, err)
	assert.Equal(t, student.ActionPickup, action)

	action, err = student.ParseAction("dropoff")
	require.NoError(t, err)
	assert.Equal(t, student.ActionDropoff, action)

	_, err = student.ParseAction("teleport")
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))
}
