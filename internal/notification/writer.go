package notification

import (
	"gorm.io/gorm"

	"github.com/quicklic/clinic-scheduler/internal/models"
)

type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(ev Event) error {
	heading, content := Message(ev.Kind, ev.ActorName, ev.QID)

	row := models.Notification{
		UserID:        ev.UserID,
		AppointmentID: ev.AppointmentID,
		Kind:          string(ev.Kind),
		Heading:       heading,
		Content:       content,
	}

	return w.db.Create(&row).Error
}
