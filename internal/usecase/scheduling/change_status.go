package scheduling

import (
	"context"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
)

var statusKinds = map[schedule.Status]notification.Kind{
	schedule.StatusConfirmed: notification.KindConfirmed,
	schedule.StatusNoShow:    notification.KindNoShow,
	schedule.StatusDiscarded: notification.KindDiscarded,
	schedule.StatusDone:      notification.KindDone,
}

// ChangeStatus is the doctor-side lifecycle operation: confirm,
// no-show, discard, or complete an appointment the doctor owns.
type ChangeStatus struct {
	repo   schedule.Repository
	notify Notifier
	cache  *cache.SlotCache
}

func NewChangeStatus(
	repo schedule.Repository,
	notify Notifier,
	slotCache *cache.SlotCache,
) *ChangeStatus {
	return &ChangeStatus{repo: repo, notify: notify, cache: slotCache}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	doctorID uint,
	appointmentID uint,
	to schedule.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil || ap.DoctorID != doctorID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.CanTransition(schedule.Status(ap.Status), to, schedule.ActorDoctor); err != nil {
		return nil, err
	}

	doctor, err := uc.repo.GetUser(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	ap.Status = string(to)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if kind, ok := statusKinds[to]; ok {
		uc.notify.Dispatch(notification.Event{
			UserID:        ap.PatientID,
			AppointmentID: &ap.ID,
			Kind:          kind,
			ActorName:     doctor.FullName(),
			QID:           ap.QID,
		})
	}

	uc.cache.InvalidateDay(ctx, ap.DoctorID, ap.StartDatetime)

	return ap, nil
}
