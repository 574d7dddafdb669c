package scheduling

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
)

// fakeRepo is an in-memory schedule.Repository. Transact runs the
// callback against the same store, which is enough for single-threaded
// tests.
type fakeRepo struct {
	users    map[uint]*models.User
	settings map[uint]*models.DoctorSetting
	clinics  map[uint]*models.Clinic
	reasons  map[uint]*models.AppointmentReason
	visits   map[uint]bool

	appointments []*models.Appointment
	nextID       uint

	createCalls     int
	failFirstCreate bool

	// Runs at the start of Transact; lets a test mutate the store the
	// way a concurrently committed writer would.
	beforeTransact func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    make(map[uint]*models.User),
		settings: make(map[uint]*models.DoctorSetting),
		clinics:  make(map[uint]*models.Clinic),
		reasons:  make(map[uint]*models.AppointmentReason),
		visits:   make(map[uint]bool),
	}
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetDoctorSetting(_ context.Context, doctorID uint) (*models.DoctorSetting, error) {
	s, ok := f.settings[doctorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) SaveDoctorSetting(_ context.Context, setting *models.DoctorSetting) error {
	f.settings[setting.DoctorID] = setting
	return nil
}

func (f *fakeRepo) GetClinic(_ context.Context, id uint) (*models.Clinic, error) {
	c, ok := f.clinics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetReason(_ context.Context, id uint) (*models.AppointmentReason, error) {
	r, ok := f.reasons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) isActive(ap *models.Appointment) bool {
	st := schedule.Status(ap.Status)
	return st == schedule.StatusPending || st == schedule.StatusConfirmed
}

func (f *fakeRepo) ListActiveInWindow(_ context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID != doctorID || !f.isActive(ap) {
			continue
		}
		if ap.StartDatetime.Before(start) || ap.EndDatetime.After(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListActiveInWindowForUpdate(ctx context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListActiveInWindow(ctx, doctorID, start, end)
}

func (f *fakeRepo) ListFutureActive(_ context.Context, doctorID uint, from time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID && f.isActive(ap) && !ap.StartDatetime.Before(from) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter schedule.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter.DoctorID != nil && ap.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.PatientID != nil && ap.PatientID != *filter.PatientID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.createCalls++
	if f.failFirstCreate && f.createCalls == 1 {
		return httperr.ErrBusiness("duplicate_identifier")
	}

	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range f.appointments {
		if existing.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) BulkUpdateStatus(_ context.Context, ids []uint, status schedule.Status) (int64, error) {
	idSet := make(map[uint]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	var n int64
	for _, ap := range f.appointments {
		if idSet[ap.ID] {
			ap.Status = string(status)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) HasVisit(_ context.Context, appointmentID uint) (bool, error) {
	return f.visits[appointmentID], nil
}

func (f *fakeRepo) Transact(_ context.Context, fn func(schedule.Repository) error) error {
	if f.beforeTransact != nil {
		f.beforeTransact()
	}
	return fn(f)
}

var _ schedule.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	events []notification.Event
}

func (f *fakeNotifier) Dispatch(ev notification.Event) {
	f.events = append(f.events, ev)
}
