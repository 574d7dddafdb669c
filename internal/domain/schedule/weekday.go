package schedule

import "time"

// WeekdayIndex maps a time to the Monday=0..Sunday=6 indexing used by
// the weekly availability mask.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
