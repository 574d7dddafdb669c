package scheduling

import (
	"context"
	"time"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
	"github.com/quicklic/clinic-scheduler/internal/observability/metrics"
	"github.com/quicklic/clinic-scheduler/internal/timezone"
)

// UpdateAvailability replaces a doctor's weekly availability and runs
// the discard cascade: every future pending/confirmed appointment that
// no longer fits the new window is discarded in one atomic batch, the
// affected patients are notified best-effort, and only then is the new
// availability persisted. A no-op update discards nothing.
type UpdateAvailability struct {
	repo    schedule.Repository
	notify  Notifier
	cache   *cache.SlotCache
	metrics *metrics.SchedulingMetrics
	now     func() time.Time
}

func NewUpdateAvailability(
	repo schedule.Repository,
	notify Notifier,
	slotCache *cache.SlotCache,
	m *metrics.SchedulingMetrics,
) *UpdateAvailability {
	return &UpdateAvailability{
		repo:    repo,
		notify:  notify,
		cache:   slotCache,
		metrics: m,
		now:     timezone.Now,
	}
}

func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	next schedule.WeeklyAvailability,
) ([]uint, error) {

	if err := next.Validate(); err != nil {
		return nil, err
	}

	doctor, err := uc.repo.GetUser(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	setting, err := uc.repo.GetDoctorSetting(ctx, doctorID)
	if err != nil {
		// First configuration: nothing to cascade.
		setting = &models.DoctorSetting{DoctorID: doctorID}
		next.ApplyTo(setting)
		if err := uc.repo.SaveDoctorSetting(ctx, setting); err != nil {
			return nil, err
		}
		return nil, nil
	}

	prev := schedule.FromSetting(setting)
	changed := schedule.ChangedWeekdays(prev, next)

	var discarded []uint
	var future []models.Appointment

	if len(changed) > 0 {
		now := uc.now()

		err := uc.repo.Transact(ctx, func(tx schedule.Repository) error {
			var err error
			future, err = tx.ListFutureActive(ctx, doctorID, now)
			if err != nil {
				return err
			}

			discarded = schedule.DiscardCandidates(next, changed, future, now)
			if len(discarded) == 0 {
				return nil
			}

			_, err = tx.BulkUpdateStatus(ctx, discarded, schedule.StatusDiscarded)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	// Notifications are queued before the new availability is saved;
	// a queue/delivery failure never rolls back the discard.
	if len(discarded) > 0 {
		byID := make(map[uint]models.Appointment, len(future))
		for _, ap := range future {
			byID[ap.ID] = ap
		}

		for _, id := range discarded {
			ap, ok := byID[id]
			if !ok {
				continue
			}
			appointmentID := ap.ID
			uc.notify.Dispatch(notification.Event{
				UserID:        ap.PatientID,
				AppointmentID: &appointmentID,
				Kind:          notification.KindDiscarded,
				ActorName:     doctor.FullName(),
				QID:           ap.QID,
			})
		}
	}

	next.ApplyTo(setting)
	if err := uc.repo.SaveDoctorSetting(ctx, setting); err != nil {
		return discarded, err
	}

	uc.cache.InvalidateDoctor(ctx, doctorID)
	uc.metrics.ObserveDiscards(len(discarded))

	return discarded, nil
}
