package models

import "time"

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Single person entity; doctor/patient behavior is selected by Role
// instead of subclassing.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:30" json:"first_name"`
	LastName  string `gorm:"size:30" json:"last_name"`

	Email        string `gorm:"size:100" json:"email"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role     string     `gorm:"size:20;not null" json:"role"`
	Gender   int        `gorm:"default:3" json:"gender"`
	Address  string     `gorm:"size:255" json:"address"`
	DOB      *time.Time `json:"dob"`
	Verified bool       `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
