// Package timeparse turns the short time tokens used on the command line
// into absolute UTC instants.
//
// Two grammars share the <number><unit> shape:
//
//	relative ("in 2h30m", "in 3d")  — offsets from now
//	absolute ("at y2025M3d14h9")    — calendar fields, local to a fixed
//	                                  hour offset from UTC
package timeparse

import (
	"fmt"
	"time"
)

// Approximations used by the relative grammar. No calendar-aware arithmetic.
const (
	yearDays  = 365
	monthDays = 30
)

// Relative parses a relative offset token and returns now plus the offset.
// Standard Go duration syntax ("2h30m", "90s") is tried first; otherwise the
// token is scanned as a run of <number><unit> pairs with units y M d h m s.
// Unknown unit letters and trailing junk are skipped.
func Relative(token string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(token); err == nil {
		return now.Add(d), nil
	}

	t := now
	for i := 0; i < len(token); {
		var num int64
		for i < len(token) && token[i] >= '0' && token[i] <= '9' {
			num = num*10 + int64(token[i]-'0')
			i++
		}
		if i >= len(token) {
			break
		}
		unit := token[i]
		i++
		switch unit {
		case 'y':
			t = t.Add(time.Duration(num*yearDays*24) * time.Hour)
		case 'M':
			t = t.Add(time.Duration(num*monthDays*24) * time.Hour)
		case 'd':
			t = t.Add(time.Duration(num*24) * time.Hour)
		case 'h':
			t = t.Add(time.Duration(num) * time.Hour)
		case 'm':
			t = t.Add(time.Duration(num) * time.Minute)
		case 's':
			t = t.Add(time.Duration(num) * time.Second)
		}
	}
	return t, nil
}

// Absolute parses a compound calendar token against the local clock, where
// "local" is UTC shifted by a whole number of hours. Fields not present in
// the token default from the current local date; hour, minute and second
// default to zero, so a date-only token means local midnight.
func Absolute(token string, now time.Time, offsetHours int) (time.Time, error) {
	local := now.UTC().Add(time.Duration(offsetHours) * time.Hour)

	var year, month, day, weekday, hour, minute, second *int

	for i := 0; i < len(token); {
		var num int
		for i < len(token) && token[i] >= '0' && token[i] <= '9' {
			num = num*10 + int(token[i]-'0')
			i++
		}
		if i >= len(token) {
			break
		}
		unit := token[i]
		i++

		switch unit {
		case 'y':
			if num < 1 || num > 9999 {
				return time.Time{}, fmt.Errorf("year must be between 1 and 9999")
			}
			year = &num
		case 'M':
			if num < 1 || num > 12 {
				return time.Time{}, fmt.Errorf("month must be between 1 and 12")
			}
			month = &num
		case 'd':
			if num < 1 || num > 31 {
				return time.Time{}, fmt.Errorf("day must be between 1 and 31")
			}
			day = &num
		case 'w':
			if num < 1 || num > 7 {
				return time.Time{}, fmt.Errorf("weekday must be 1-7 (1=Monday, 7=Sunday)")
			}
			weekday = &num
		case 'h':
			if num > 23 {
				return time.Time{}, fmt.Errorf("hour must be between 0 and 23")
			}
			hour = &num
		case 'm':
			if num > 59 {
				return time.Time{}, fmt.Errorf("minute must be between 0 and 59")
			}
			minute = &num
		case 's':
			if num > 59 {
				return time.Time{}, fmt.Errorf("second must be between 0 and 59")
			}
			second = &num
		}
	}

	// A weekday without an explicit day selects the next occurrence of that
	// weekday strictly after today; if today matches it rolls a full week.
	if weekday != nil && day == nil {
		ahead := daysUntilWeekday(local, *weekday)
		target := local.AddDate(0, 0, ahead)
		y, m, d := target.Date()
		md := int(m)
		year, month, day = &y, &md, &d
	}

	fy, fmo, fd := local.Date()
	if year != nil {
		fy = *year
	}
	if month != nil {
		fmo = time.Month(*month)
	}
	if day != nil {
		fd = *day
	}
	fh, fmin, fs := 0, 0, 0
	if hour != nil {
		fh = *hour
	}
	if minute != nil {
		fmin = *minute
	}
	if second != nil {
		fs = *second
	}

	composed := time.Date(fy, fmo, fd, fh, fmin, fs, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a changed field means
	// the combination was not a real calendar date (e.g. Feb 30).
	if composed.Year() != fy || composed.Month() != fmo || composed.Day() != fd {
		return time.Time{}, fmt.Errorf("invalid date/time: %04d-%02d-%02d %02d:%02d:%02d",
			fy, int(fmo), fd, fh, fmin, fs)
	}

	return composed.Add(-time.Duration(offsetHours) * time.Hour), nil
}

// daysUntilWeekday returns how many days ahead the target ISO weekday
// (1=Monday .. 7=Sunday) is, in 1..7 — never zero.
func daysUntilWeekday(local time.Time, target int) int {
	// time.Weekday counts from Sunday=0; shift to Monday=0.
	current := (int(local.Weekday()) + 6) % 7
	ahead := (target - 1) - current
	if ahead <= 0 {
		ahead += 7
	}
	return ahead
}
