package schedule

import "time"

// Two interval comparison rules coexist on purpose.
//
// Slot marking treats slots as closed intervals and counts a boundary
// touch as occupied: a slot starting exactly where an appointment ends
// is shown unavailable. The booking check uses strict half-open
// semantics, so back-to-back appointments are accepted. Both behaviors
// are kept as-is for client compatibility; do not unify them.

// Touches reports whether the closed intervals [aStart,aEnd] and
// [bStart,bEnd] share at least one instant.
func Touches(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect: max(starts) < min(ends).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	laterStart := aStart
	if bStart.After(laterStart) {
		laterStart = bStart
	}
	earlierEnd := aEnd
	if bEnd.Before(earlierEnd) {
		earlierEnd = bEnd
	}
	return laterStart.Before(earlierEnd)
}
