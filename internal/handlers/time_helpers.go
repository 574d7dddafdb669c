package handlers

import (
	"strings"
	"time"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/timezone"
)

// parseDate interprets a date-only query value as local midnight in the
// deployment timezone.
func parseDate(dateStr string) (time.Time, error) {
	return timezone.ParseDate(dateStr)
}

func parseDatetime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(timezone.Default()), nil
}

// parseStatusList splits a comma separated status filter ("PEND,CONF").
func parseStatusList(value string) []schedule.Status {
	var statuses []schedule.Status
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			statuses = append(statuses, schedule.Status(part))
		}
	}
	return statuses
}
