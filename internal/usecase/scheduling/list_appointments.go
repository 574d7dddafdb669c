package scheduling

import (
	"context"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/dto"
)

type ListAppointments struct {
	repo schedule.Repository
}

func NewListAppointments(repo schedule.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter schedule.AppointmentFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			QID:           ap.QID,
			StartDatetime: ap.StartDatetime,
			EndDatetime:   ap.EndDatetime,
			Status:        ap.Status,
			PatientName:   ap.Patient.FullName(),
			DoctorName:    ap.Doctor.FullName(),
			ClinicName:    ap.Clinic.Name,
			ReasonTitle:   ap.Reason.Title,
		})
	}

	return out, nil
}
