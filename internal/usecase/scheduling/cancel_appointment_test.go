package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/notification"
)

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")
	ap := seedAppointment(repo, schedule.StatusPending)

	uc := NewCancelAppointment(repo, notify, nil)

	updated, err := uc.Execute(context.Background(), testPatientID, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusCancelled), updated.Status)

	require.Len(t, notify.events, 1)
	assert.Equal(t, testDoctorID, notify.events[0].UserID)
	assert.Equal(t, notification.KindCancelled, notify.events[0].Kind)
	assert.Equal(t, "Jin Park", notify.events[0].ActorName)
}

func TestCancelAppointmentAfterVisit(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")
	ap := seedAppointment(repo, schedule.StatusConfirmed)
	repo.visits[ap.ID] = true

	uc := NewCancelAppointment(repo, notify, nil)

	_, err := uc.Execute(context.Background(), testPatientID, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
	assert.Equal(t, string(schedule.StatusConfirmed), ap.Status)
}

func TestCancelAppointmentForeignPatient(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")
	ap := seedAppointment(repo, schedule.StatusPending)

	uc := NewCancelAppointment(repo, notify, nil)

	_, err := uc.Execute(context.Background(), testPatientID+50, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAppointmentTerminal(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")
	ap := seedAppointment(repo, schedule.StatusDiscarded)

	uc := NewCancelAppointment(repo, notify, nil)

	_, err := uc.Execute(context.Background(), testPatientID, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
}
