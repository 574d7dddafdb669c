package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	QID           string    `json:"qid"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Status        string    `json:"status"`
	PatientName   string    `json:"patient_name"`
	DoctorName    string    `json:"doctor_name"`
	ClinicName    string    `json:"clinic_name"`
	ReasonTitle   string    `json:"reason"`
}
