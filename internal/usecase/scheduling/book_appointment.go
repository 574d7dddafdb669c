package scheduling

import (
	"context"
	"time"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
	"github.com/quicklic/clinic-scheduler/internal/observability/metrics"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint
	ClinicID  uint
	ReasonID  uint

	StartDatetime time.Time
	EndDatetime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo    schedule.Repository
	notify  Notifier
	cache   *cache.SlotCache
	metrics *metrics.SchedulingMetrics
}

func NewBookAppointment(
	repo schedule.Repository,
	notify Notifier,
	slotCache *cache.SlotCache,
	m *metrics.SchedulingMetrics,
) *BookAppointment {
	return &BookAppointment{
		repo:    repo,
		notify:  notify,
		cache:   slotCache,
		metrics: m,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the whole check-then-create sequence inside one
// transaction with the doctor's active appointments locked, so two
// concurrent bookings for the same doctor cannot both pass the overlap
// check.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			uc.metrics.ObserveBooking(code)
		} else {
			uc.metrics.ObserveBooking("error")
		}
		return nil, err
	}

	uc.metrics.ObserveBooking("created")
	return ap, nil
}

func (uc *BookAppointment) execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Input sanity, before any lookup
	// --------------------------------------------------
	if in.StartDatetime.IsZero() || !in.EndDatetime.After(in.StartDatetime) {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}

	patient, err := uc.repo.GetUser(ctx, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if _, err := uc.repo.GetClinic(ctx, in.ClinicID); err != nil {
		return nil, httperr.ErrBusiness("clinic_not_found")
	}

	if _, err := uc.repo.GetReason(ctx, in.ReasonID); err != nil {
		return nil, httperr.ErrBusiness("reason_not_found")
	}

	// --------------------------------------------------
	// Window validation + conflict check + create, one
	// atomic unit per doctor
	// --------------------------------------------------
	// The setting is read inside the transaction so a booking racing a
	// concurrent availability change is validated against the window it
	// will commit under, not a stale one.
	var created *models.Appointment

	err = uc.repo.Transact(ctx, func(tx schedule.Repository) error {
		setting, err := tx.GetDoctorSetting(ctx, in.DoctorID)
		if err != nil {
			return httperr.ErrBusiness("doctor_unavailable")
		}

		avail := schedule.FromSetting(setting)

		if !avail.IsDayActive(schedule.WeekdayIndex(in.StartDatetime)) {
			return httperr.ErrBusiness("doctor_unavailable")
		}

		windowStart, windowEnd, _ := avail.DayWindow(in.StartDatetime)
		if in.StartDatetime.Before(windowStart) || in.EndDatetime.After(windowEnd) {
			return httperr.ErrBusiness("doctor_unavailable")
		}

		existing, err := tx.ListActiveInWindowForUpdate(
			ctx,
			in.DoctorID,
			windowStart,
			windowEnd,
		)
		if err != nil {
			return err
		}

		for _, other := range existing {
			if schedule.Overlaps(
				in.StartDatetime, in.EndDatetime,
				other.StartDatetime, other.EndDatetime,
			) {
				return httperr.ErrBusiness("appointment_overlap")
			}
		}

		ap := &models.Appointment{
			QID:           schedule.NewQID(in.PatientID, in.DoctorID),
			PatientID:     in.PatientID,
			DoctorID:      in.DoctorID,
			ClinicID:      in.ClinicID,
			ReasonID:      in.ReasonID,
			StartDatetime: in.StartDatetime,
			EndDatetime:   in.EndDatetime,
			Status:        string(schedule.InitialStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			// One regeneration on qid collision, then surface.
			if !httperr.IsBusiness(err, "duplicate_identifier") {
				return err
			}
			ap.QID = schedule.NewQID(in.PatientID, in.DoctorID)
			if err := tx.CreateAppointment(ctx, ap); err != nil {
				return err
			}
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Event{
		UserID:        in.DoctorID,
		AppointmentID: &created.ID,
		Kind:          notification.KindCreated,
		ActorName:     patient.FullName(),
		QID:           created.QID,
	})

	uc.cache.InvalidateDay(ctx, in.DoctorID, created.StartDatetime)

	return created, nil
}
