package models

import "time"

type AppointmentReason struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:255;index;not null" json:"title"`
}

type Appointment struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	QID string `gorm:"size:255;uniqueIndex;not null" json:"qid"`

	PatientID uint `gorm:"index" json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint `gorm:"index" json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	ClinicID uint   `json:"clinic_id"`
	Clinic   Clinic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"clinic"`

	StartDatetime time.Time `gorm:"index;not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"index;not null" json:"end_datetime"`

	ReasonID uint              `json:"reason_id"`
	Reason   AppointmentReason `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reason"`

	Status string `gorm:"size:4;index;default:'PEND'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Visit is the 1:1 record of an attended appointment. Scheduling only
// reads its existence to tell whether the patient was already seen.
type Visit struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Notes        string `gorm:"type:text" json:"notes"`
	Prescription string `gorm:"type:text" json:"prescription"`

	CreatedAt time.Time `json:"created_at"`
}
