package scheduling

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
)

const (
	testPatientID = uint(1)
	testDoctorID  = uint(2)
	testClinicID  = uint(10)
	testReasonID  = uint(20)
)

// 2026-03-02 is a Monday.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func seedScheduling(repo *fakeRepo, weekdays string) {
	repo.users[testPatientID] = &models.User{ID: testPatientID, FirstName: "Jin", LastName: "Park", Role: models.RolePatient}
	repo.users[testDoctorID] = &models.User{ID: testDoctorID, FirstName: "Mina", LastName: "Choi", Role: models.RoleDoctor}
	repo.clinics[testClinicID] = &models.Clinic{ID: testClinicID, Name: "Downtown Clinic"}
	repo.reasons[testReasonID] = &models.AppointmentReason{ID: testReasonID, Title: "Checkup"}
	repo.settings[testDoctorID] = &models.DoctorSetting{
		DoctorID:    testDoctorID,
		StartTime:   "09:00",
		EndTime:     "17:00",
		SlotMinutes: 30,
		Weekdays:    weekdays,
	}
}

func newBookUC(repo *fakeRepo, notify *fakeNotifier) *BookAppointment {
	return NewBookAppointment(repo, notify, nil, nil)
}

func bookInput(start, end time.Time) BookAppointmentInput {
	return BookAppointmentInput{
		PatientID:     testPatientID,
		DoctorID:      testDoctorID,
		ClinicID:      testClinicID,
		ReasonID:      testReasonID,
		StartDatetime: start,
		EndDatetime:   end,
	}
}

func TestBookAppointment(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	uc := newBookUC(repo, notify)

	ap, err := uc.Execute(context.Background(), bookInput(at(testDay, 10, 0), at(testDay, 10, 30)))
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusPending), ap.Status)
	assert.Regexp(t, regexp.MustCompile(`^1-2-\d{4}$`), ap.QID)

	require.Len(t, notify.events, 1)
	assert.Equal(t, testDoctorID, notify.events[0].UserID)
	assert.Equal(t, notification.KindCreated, notify.events[0].Kind)
	assert.Equal(t, "Jin Park", notify.events[0].ActorName)
}

func TestBookAppointmentOverlapRejected(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	uc := newBookUC(repo, notify)

	_, err := uc.Execute(context.Background(), bookInput(at(testDay, 10, 0), at(testDay, 10, 30)))
	require.NoError(t, err)

	// Overlapping the confirmed slot fails.
	_, err = uc.Execute(context.Background(), bookInput(at(testDay, 10, 15), at(testDay, 10, 45)))
	assert.True(t, httperr.IsBusiness(err, "appointment_overlap"))

	// Back to back is fine.
	_, err = uc.Execute(context.Background(), bookInput(at(testDay, 10, 30), at(testDay, 11, 0)))
	assert.NoError(t, err)

	assert.Len(t, repo.appointments, 2)
}

func TestBookAppointmentInactiveWeekday(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111100")

	uc := newBookUC(repo, notify)

	sunday := testDay.AddDate(0, 0, 6)
	_, err := uc.Execute(context.Background(), bookInput(at(sunday, 10, 0), at(sunday, 10, 30)))

	assert.True(t, httperr.IsBusiness(err, "doctor_unavailable"))
	assert.Empty(t, repo.appointments)
	assert.Empty(t, notify.events)
}

func TestBookAppointmentOutsideWindow(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	uc := newBookUC(repo, notify)

	_, err := uc.Execute(context.Background(), bookInput(at(testDay, 8, 0), at(testDay, 8, 30)))
	assert.True(t, httperr.IsBusiness(err, "doctor_unavailable"))

	// Crossing the window end counts as outside too.
	_, err = uc.Execute(context.Background(), bookInput(at(testDay, 16, 45), at(testDay, 17, 15)))
	assert.True(t, httperr.IsBusiness(err, "doctor_unavailable"))
}

func TestBookAppointmentInvalidDatetime(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	uc := newBookUC(repo, notify)

	_, err := uc.Execute(context.Background(), bookInput(at(testDay, 10, 0), at(testDay, 10, 0)))
	assert.True(t, httperr.IsBusiness(err, "invalid_datetime"))

	_, err = uc.Execute(context.Background(), bookInput(time.Time{}, at(testDay, 10, 0)))
	assert.True(t, httperr.IsBusiness(err, "invalid_datetime"))
}

func TestBookAppointmentMissingReferences(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	uc := newBookUC(repo, notify)

	in := bookInput(at(testDay, 10, 0), at(testDay, 10, 30))
	in.PatientID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))

	in = bookInput(at(testDay, 10, 0), at(testDay, 10, 30))
	in.ClinicID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "clinic_not_found"))

	in = bookInput(at(testDay, 10, 0), at(testDay, 10, 30))
	in.ReasonID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "reason_not_found"))
}

// A window narrowed between the pre-checks and the booking transaction
// must reject the booking: the setting is re-read under the same
// transaction that creates the row.
func TestBookAppointmentSeesConcurrentWindowChange(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")

	repo.beforeTransact = func() {
		repo.settings[testDoctorID].StartTime = "10:00"
		repo.settings[testDoctorID].EndTime = "16:00"
	}

	uc := newBookUC(repo, notify)

	_, err := uc.Execute(context.Background(), bookInput(at(testDay, 9, 0), at(testDay, 9, 30)))

	assert.True(t, httperr.IsBusiness(err, "doctor_unavailable"))
	assert.Empty(t, repo.appointments)
	assert.Empty(t, notify.events)
}

// A qid collision is retried once with a fresh identifier.
func TestBookAppointmentRegeneratesQIDOnCollision(t *testing.T) {
	repo := newFakeRepo()
	notify := &fakeNotifier{}
	seedScheduling(repo, "1111111")
	repo.failFirstCreate = true

	uc := newBookUC(repo, notify)

	ap, err := uc.Execute(context.Background(), bookInput(at(testDay, 10, 0), at(testDay, 10, 30)))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.createCalls)
	assert.Regexp(t, regexp.MustCompile(`^1-2-\d{4}$`), ap.QID)
}
