package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// People / settings
// --------------------------------------------------

func (r *SchedulingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SchedulingGormRepository) GetDoctorSetting(
	ctx context.Context,
	doctorID uint,
) (*models.DoctorSetting, error) {

	var setting models.DoctorSetting
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SchedulingGormRepository) SaveDoctorSetting(
	ctx context.Context,
	setting *models.DoctorSetting,
) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *SchedulingGormRepository) GetClinic(
	ctx context.Context,
	id uint,
) (*models.Clinic, error) {

	var clinic models.Clinic
	if err := r.db.WithContext(ctx).First(&clinic, id).Error; err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (r *SchedulingGormRepository) GetReason(
	ctx context.Context,
	id uint,
) (*models.AppointmentReason, error) {

	var reason models.AppointmentReason
	if err := r.db.WithContext(ctx).First(&reason, id).Error; err != nil {
		return nil, err
	}
	return &reason, nil
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func activeStatusValues() []string {
	statuses := schedule.ActiveStatuses()
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}

func (r *SchedulingGormRepository) ListActiveInWindow(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status IN ? AND start_datetime >= ? AND end_datetime <= ?",
			doctorID, activeStatusValues(), start, end,
		).
		Order("start_datetime ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListActiveInWindowForUpdate(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"doctor_id = ? AND status IN ? AND start_datetime >= ? AND end_datetime <= ?",
			doctorID, activeStatusValues(), start, end,
		).
		Order("start_datetime ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListFutureActive(
	ctx context.Context,
	doctorID uint,
	from time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status IN ? AND start_datetime >= ?",
			doctorID, activeStatusValues(), from,
		).
		Order("start_datetime ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListAppointments(
	ctx context.Context,
	filter schedule.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Clinic").
		Preload("Reason")

	if filter.DoctorID != nil {
		q = q.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.PatientID != nil {
		q = q.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.ClinicID != nil {
		q = q.Where("clinic_id = ?", *filter.ClinicID)
	}
	if filter.ReasonID != nil {
		q = q.Where("reason_id = ?", *filter.ReasonID)
	}
	if len(filter.Statuses) > 0 {
		values := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			values = append(values, string(s))
		}
		q = q.Where("status IN ?", values)
	}
	if filter.From != nil {
		q = q.Where("start_datetime >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("end_datetime <= ?", *filter.To)
	}

	var apps []models.Appointment
	if err := q.Order("start_datetime ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointments (write)
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("duplicate_identifier")
		}
		return err
	}

	return nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) BulkUpdateStatus(
	ctx context.Context,
	ids []uint,
	status schedule.Status,
) (int64, error) {

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id IN ?", ids).
		Update("status", string(status))

	return res.RowsAffected, res.Error
}

func (r *SchedulingGormRepository) HasVisit(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *SchedulingGormRepository) Transact(
	ctx context.Context,
	fn func(schedule.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx})
	})
}

// Compile-time check
var _ schedule.Repository = (*SchedulingGormRepository)(nil)
