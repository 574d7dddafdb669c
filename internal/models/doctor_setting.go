package models

import "time"

// DoctorSetting holds one doctor's weekly bookable window. Exactly one
// row per doctor; replaced in place on every settings update, never
// deleted while the doctor exists.
type DoctorSetting struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"uniqueIndex;not null" json:"doctor_id"`

	StartTime   string `gorm:"size:5" json:"start_time"` // "15:04"
	EndTime     string `gorm:"size:5" json:"end_time"`
	SlotMinutes int    `gorm:"default:10" json:"slot_minutes"`

	// 7-char mask, Monday first: "1111100" = Mon-Fri active.
	Weekdays string `gorm:"size:7;default:'1111100'" json:"weekdays"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
