package schedule

import (
	"context"
	"time"

	"github.com/quicklic/clinic-scheduler/internal/models"
)

type AppointmentFilter struct {
	DoctorID  *uint
	PatientID *uint
	ClinicID  *uint
	ReasonID  *uint
	Statuses  []Status
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	// -------- People / settings --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetDoctorSetting(
		ctx context.Context,
		doctorID uint,
	) (*models.DoctorSetting, error)

	SaveDoctorSetting(
		ctx context.Context,
		setting *models.DoctorSetting,
	) error

	// -------- Reference data --------
	GetClinic(
		ctx context.Context,
		id uint,
	) (*models.Clinic, error)

	GetReason(
		ctx context.Context,
		id uint,
	) (*models.AppointmentReason, error)

	// -------- Appointments (read) --------
	ListActiveInWindow(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// Same window query, but with row locks held for the enclosing
	// transaction. Serializes booking per doctor.
	ListActiveInWindowForUpdate(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListFutureActive(
		ctx context.Context,
		doctorID uint,
		from time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointments (write) --------
	// CreateAppointment returns the duplicate_identifier business error
	// when the qid unique index rejects the row.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	BulkUpdateStatus(
		ctx context.Context,
		ids []uint,
		status Status,
	) (int64, error)

	HasVisit(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	// Transact runs fn against a repository bound to a single
	// database transaction.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
