package timezone

import "time"

// Deployment-wide default, overridden from config at startup.
var defaultTimezone = "Asia/Seoul"

func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTimezone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func Default() *time.Location {
	return Location(defaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Default())
}

// ParseDate interprets a date-only string as local midnight in the
// deployment timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Default())
}
