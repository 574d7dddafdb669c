package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklic/clinic-scheduler/internal/models"
)

func allDays() [7]bool {
	return [7]bool{true, true, true, true, true, true, true}
}

func at(day time.Time, hour, min, sec int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, sec, 0, day.Location())
}

func TestGenerateSlotsFullDay(t *testing.T) {
	avail := WeeklyAvailability{
		StartTime:   "09:00",
		EndTime:     "17:00",
		SlotMinutes: 30,
		Weekdays:    allDays(),
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(avail, day)

	require.Len(t, slots, 16)

	assert.Equal(t, at(day, 9, 0, 0), slots[0].Start)
	assert.Equal(t, at(day, 9, 29, 59), slots[0].End)

	last := slots[len(slots)-1]
	assert.Equal(t, at(day, 16, 30, 0), last.Start)
	assert.Equal(t, at(day, 16, 59, 59), last.End)

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlotsClipsPartialLastSlot(t *testing.T) {
	avail := WeeklyAvailability{
		StartTime:   "09:00",
		EndTime:     "10:15",
		SlotMinutes: 30,
		Weekdays:    allDays(),
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(avail, day)

	require.Len(t, slots, 3)
	assert.Equal(t, at(day, 10, 0, 0), slots[2].Start)
	assert.Equal(t, at(day, 10, 14, 59), slots[2].End)
}

func TestGenerateSlotsInactiveDay(t *testing.T) {
	avail := WeeklyAvailability{
		StartTime:   "09:00",
		EndTime:     "17:00",
		SlotMinutes: 30,
		Weekdays:    [7]bool{true, true, true, true, true, false, false},
	}
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlots(avail, sunday))
}

func TestGenerateSlotsEmptyWindow(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlots(DefaultAvailability(), day))
}

func TestMarkOccupiedBoundaryTouchCounts(t *testing.T) {
	avail := WeeklyAvailability{
		StartTime:   "09:00",
		EndTime:     "12:00",
		SlotMinutes: 30,
		Weekdays:    allDays(),
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(avail, day)
	require.Len(t, slots, 6)

	appointments := []models.Appointment{
		{StartDatetime: at(day, 10, 0, 0), EndDatetime: at(day, 10, 30, 0)},
	}

	slots = MarkOccupied(slots, appointments)

	// 09:30 slot ends at 09:59:59, one second before the appointment.
	assert.True(t, slots[1].Available)
	// 10:00 slot is fully covered.
	assert.False(t, slots[2].Available)
	// 10:30 slot starts exactly where the appointment ends; the touch
	// makes it unavailable.
	assert.False(t, slots[3].Available)
	assert.True(t, slots[4].Available)
}
