package validation

import (
	"strings"
	"time"
)

// Age returns the number of full years between birth and now, comparing
// month and day so a birthday later in the year has not counted yet.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// IsAdult reports whether a YYYY-MM-DD birth date is at least
// MinimumAge years before now. Empty or malformed dates fail.
func IsAdult(date string, now time.Time) bool {
	date = strings.TrimSpace(date)
	if date == "" {
		return false
	}

	birth, err := time.ParseInLocation(BirthDateLayout, date, now.Location())
	if err != nil {
		return false
	}

	return Age(birth, now) >= MinimumAge
}
