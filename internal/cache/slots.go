package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
)

const slotTTL = time.Minute

// SlotCache keeps generated slot views in redis for a short TTL. It is
// strictly an accelerator: every method is nil-safe and every redis
// failure degrades to a miss.
type SlotCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewSlotCache(rdb *redis.Client, log *zap.Logger) *SlotCache {
	return &SlotCache{rdb: rdb, log: log}
}

func slotKey(doctorID uint, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s", doctorID, date.Format("2006-01-02"))
}

func (c *SlotCache) Get(ctx context.Context, doctorID uint, date time.Time) ([]schedule.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(doctorID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, doctorID uint, date time.Time, slots []schedule.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(doctorID, date), raw, slotTTL).Err(); err != nil {
		c.log.Warn("slot cache set failed", zap.Uint("doctor_id", doctorID), zap.Error(err))
	}
}

func (c *SlotCache) InvalidateDay(ctx context.Context, doctorID uint, date time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(doctorID, date)).Err(); err != nil {
		c.log.Warn("slot cache invalidate failed", zap.Uint("doctor_id", doctorID), zap.Error(err))
	}
}

// InvalidateDoctor drops every cached day for the doctor; used by the
// schedule-change cascade, which can touch many dates at once.
func (c *SlotCache) InvalidateDoctor(ctx context.Context, doctorID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:*", doctorID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("slot cache invalidate failed", zap.Uint("doctor_id", doctorID), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("slot cache scan failed", zap.Uint("doctor_id", doctorID), zap.Error(err))
	}
}
