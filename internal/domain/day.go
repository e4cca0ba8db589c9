package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek code of a weekday as stored in schedules
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
	Saturday  DayOfWeek = "SAT"
	Sunday    DayOfWeek = "SUN"
)

var weekdayCodes = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayOfWeekFromDate returns the weekday code of the date
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return weekdayCodes[date.Weekday()]
}

// ParseDayOfWeek parses a day code, case-insensitive
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, s)
	}
	return d, nil
}

// Valid reports whether d is a known day code
func (d DayOfWeek) Valid() bool {
	for _, code := range weekdayCodes {
		if code == d {
			return true
		}
	}
	return false
}

// Weekday converts the code back to time.Weekday
func (d DayOfWeek) Weekday() time.Weekday {
	for wd, code := range weekdayCodes {
		if code == d {
			return wd
		}
	}
	return time.Sunday
}
