package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID *uint       `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Kind    string `gorm:"size:30;index" json:"kind"`
	Heading string `gorm:"size:255" json:"heading"`
	Content string `gorm:"size:255" json:"content"`

	IsRead bool `gorm:"default:false;index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
