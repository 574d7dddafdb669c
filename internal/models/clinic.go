package models

import "time"

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

type City struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CountryID uint   `json:"country_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
}

type Clinic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Location string `gorm:"size:255" json:"location"`

	CityID    *uint   `json:"city_id"`
	City      City    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"city"`
	CountryID *uint   `json:"country_id"`
	Country   Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
