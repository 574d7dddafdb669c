package scheduling

import (
	"context"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
)

// CancelAppointment is the patient-side cancellation. Only the owning
// patient may cancel, and only before the visit happened.
type CancelAppointment struct {
	repo   schedule.Repository
	notify Notifier
	cache  *cache.SlotCache
}

func NewCancelAppointment(
	repo schedule.Repository,
	notify Notifier,
	slotCache *cache.SlotCache,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, notify: notify, cache: slotCache}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	patientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil || ap.PatientID != patientID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	seen, err := uc.repo.HasVisit(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, httperr.ErrBusiness("invalid_status_transition")
	}

	if err := schedule.CanTransition(
		schedule.Status(ap.Status),
		schedule.StatusCancelled,
		schedule.ActorPatient,
	); err != nil {
		return nil, err
	}

	patient, err := uc.repo.GetUser(ctx, patientID)
	if err != nil {
		return nil, err
	}

	ap.Status = string(schedule.StatusCancelled)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Event{
		UserID:        ap.DoctorID,
		AppointmentID: &ap.ID,
		Kind:          notification.KindCancelled,
		ActorName:     patient.FullName(),
		QID:           ap.QID,
	})

	uc.cache.InvalidateDay(ctx, ap.DoctorID, ap.StartDatetime)

	return ap, nil
}
