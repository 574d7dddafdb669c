package schedule

import (
	"time"

	"github.com/quicklic/clinic-scheduler/internal/models"
)

// ChangedWeekdays diffs two availability values per weekday. A day is
// changed when its active flag flipped, or it stays active while the
// window moved. Days listed here are candidates for the discard
// cascade; the containment check decides which appointments actually
// fall out.
func ChangedWeekdays(prev, next WeeklyAvailability) []int {
	windowMoved := prev.StartTime != next.StartTime || prev.EndTime != next.EndTime

	var days []int
	for d := 0; d < 7; d++ {
		switch {
		case prev.Weekdays[d] != next.Weekdays[d]:
			days = append(days, d)
		case prev.Weekdays[d] && windowMoved:
			days = append(days, d)
		}
	}
	return days
}

// DiscardCandidates selects the appointments the cascade must
// transition to DISCARD: future, still pending or confirmed, on a
// changed weekday, and no longer fully contained in the new window.
func DiscardCandidates(next WeeklyAvailability, changed []int, appointments []models.Appointment, now time.Time) []uint {
	changedSet := make(map[int]bool, len(changed))
	for _, d := range changed {
		changedSet[d] = true
	}

	var ids []uint
	for _, ap := range appointments {
		if ap.StartDatetime.Before(now) {
			continue
		}
		if st := Status(ap.Status); st != StatusPending && st != StatusConfirmed {
			continue
		}
		if !changedSet[WeekdayIndex(ap.StartDatetime)] {
			continue
		}

		windowStart, windowEnd, ok := next.DayWindow(ap.StartDatetime)
		if !ok || ap.StartDatetime.Before(windowStart) || ap.EndDatetime.After(windowEnd) {
			ids = append(ids, ap.ID)
		}
	}
	return ids
}
