package schedule

import (
	"time"

	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/models"
)

// WeeklyAvailability is an immutable value describing one doctor's
// bookable window: a single start/end time of day plus the weekdays it
// applies to. Settings updates replace the whole value.
type WeeklyAvailability struct {
	StartTime   string // "15:04"
	EndTime     string
	SlotMinutes int
	Weekdays    [7]bool // Monday=0 .. Sunday=6
}

// DefaultAvailability matches what a doctor gets on registration: an
// empty 00:00-00:00 window Mon-Fri, 10 minute slots. No slots are
// bookable until the doctor configures real hours.
func DefaultAvailability() WeeklyAvailability {
	return WeeklyAvailability{
		StartTime:   "00:00",
		EndTime:     "00:00",
		SlotMinutes: 10,
		Weekdays:    [7]bool{true, true, true, true, true, false, false},
	}
}

func (a WeeklyAvailability) IsDayActive(weekday int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}
	return a.Weekdays[weekday]
}

// Window returns the start/end time of day for the given weekday, or
// ok=false when the weekday is out of range or inactive.
func (a WeeklyAvailability) Window(weekday int) (start, end string, ok bool) {
	if !a.IsDayActive(weekday) {
		return "", "", false
	}
	return a.StartTime, a.EndTime, true
}

// DayWindow combines the weekday window with a concrete date, in that
// date's location. ok=false when the day is inactive.
func (a WeeklyAvailability) DayWindow(date time.Time) (start, end time.Time, ok bool) {
	if !a.IsDayActive(WeekdayIndex(date)) {
		return time.Time{}, time.Time{}, false
	}
	return atTimeOfDay(date, a.StartTime), atTimeOfDay(date, a.EndTime), true
}

// Validate rejects configuration errors at the model boundary. An
// equal start/end pair is allowed: it is the unconfigured empty window.
func (a WeeklyAvailability) Validate() error {
	if a.SlotMinutes <= 0 {
		return httperr.ErrBusiness("invalid_slot_duration")
	}

	start, okStart := parseTimeOfDay(a.StartTime)
	end, okEnd := parseTimeOfDay(a.EndTime)
	if !okStart || !okEnd {
		return httperr.ErrBusiness("invalid_availability")
	}
	if end.Before(start) {
		return httperr.ErrBusiness("invalid_availability")
	}

	return nil
}

func FromSetting(s *models.DoctorSetting) WeeklyAvailability {
	a := WeeklyAvailability{
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		SlotMinutes: s.SlotMinutes,
	}
	for i := 0; i < 7 && i < len(s.Weekdays); i++ {
		a.Weekdays[i] = s.Weekdays[i] == '1'
	}
	return a
}

// ApplyTo writes the value into the persisted row wholesale.
func (a WeeklyAvailability) ApplyTo(s *models.DoctorSetting) {
	s.StartTime = a.StartTime
	s.EndTime = a.EndTime
	s.SlotMinutes = a.SlotMinutes

	mask := make([]byte, 7)
	for i, active := range a.Weekdays {
		if active {
			mask[i] = '1'
		} else {
			mask[i] = '0'
		}
	}
	s.Weekdays = string(mask)
}

func parseTimeOfDay(hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func atTimeOfDay(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
