package schedule

import (
	"time"

	"github.com/quicklic/clinic-scheduler/internal/models"
)

// Slot is a transient, never-persisted view value.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// GenerateSlots walks the doctor's window for the given date in slot
// sized steps. Each slot is the closed interval
// [cursor, cursor+duration-1s]; the final slot is clipped to the window
// end so the whole window is always covered, even when the remainder is
// shorter than a full duration. An inactive or unconfigured day yields
// no slots, which is not an error.
func GenerateSlots(a WeeklyAvailability, date time.Time) []Slot {
	windowStart, windowEnd, ok := a.DayWindow(date)
	if !ok {
		return nil
	}

	duration := time.Duration(a.SlotMinutes) * time.Minute
	lastEnd := windowEnd.Add(-time.Second)

	var slots []Slot
	for cursor := windowStart; cursor.Before(windowEnd); cursor = cursor.Add(duration) {
		end := cursor.Add(duration - time.Second)
		if end.After(lastEnd) {
			end = lastEnd
		}
		slots = append(slots, Slot{Start: cursor, End: end, Available: true})
	}

	return slots
}

// MarkOccupied flags every slot whose closed interval touches any of
// the given appointments. Boundary contact counts: a slot beginning
// exactly at an appointment's end is marked unavailable.
func MarkOccupied(slots []Slot, appointments []models.Appointment) []Slot {
	for i := range slots {
		for _, ap := range appointments {
			if Touches(slots[i].Start, slots[i].End, ap.StartDatetime, ap.EndDatetime) {
				slots[i].Available = false
				break
			}
		}
	}
	return slots
}
