package scheduling

import (
	"context"
	"time"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/observability/metrics"
)

type GetSlots struct {
	repo    schedule.Repository
	cache   *cache.SlotCache
	metrics *metrics.SchedulingMetrics
}

func NewGetSlots(
	repo schedule.Repository,
	slotCache *cache.SlotCache,
	m *metrics.SchedulingMetrics,
) *GetSlots {
	return &GetSlots{repo: repo, cache: slotCache, metrics: m}
}

// Execute returns the bookable view of one doctor's day. A doctor with
// no configured availability, or an inactive weekday, yields an empty
// sequence rather than an error. Never mutates persisted state.
func (uc *GetSlots) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]schedule.Slot, error) {

	if cached, ok := uc.cache.Get(ctx, doctorID, date); ok {
		uc.metrics.ObserveSlotQuery(true)
		return cached, nil
	}
	uc.metrics.ObserveSlotQuery(false)

	setting, err := uc.repo.GetDoctorSetting(ctx, doctorID)
	if err != nil {
		return []schedule.Slot{}, nil
	}

	avail := schedule.FromSetting(setting)

	slots := schedule.GenerateSlots(avail, date)
	if len(slots) == 0 {
		return []schedule.Slot{}, nil
	}

	windowStart, windowEnd, _ := avail.DayWindow(date)

	appointments, err := uc.repo.ListActiveInWindow(
		ctx,
		doctorID,
		windowStart,
		windowEnd,
	)
	if err != nil {
		return nil, err
	}

	slots = schedule.MarkOccupied(slots, appointments)

	uc.cache.Set(ctx, doctorID, date, slots)

	return slots, nil
}
