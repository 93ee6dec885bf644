package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Pure month/holiday arithmetic over the shared holiday and lock maps. The
// maps themselves live in the dataset service; everything here is stateless
// so it can be unit tested against fixed months.

// MonthKey keys holiday and lock configuration, "YYYY-M" with a 1-based month.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// ParseMonthKey parses "YYYY-M".
func ParseMonthKey(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	return year, month, nil
}

// DaysInMonth number of calendar days in the month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday weekday of day 1 (0 = Sunday), for calendar layout.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsLastDay reports whether day is the final calendar day of the month.
func IsLastDay(year, month, day int) bool {
	return day == DaysInMonth(year, month)
}

// DefaultSundays the fallback holiday set: every Sunday of the month.
func DefaultSundays(year, month int) []int {
	out := []int{}
	for d := 1; d <= DaysInMonth(year, month); d++ {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			out = append(out, d)
		}
	}
	return out
}

// Effective returns the configured holiday set for the month, or the Sunday
// default when the month was never edited.
func Effective(holidays map[string][]int, year, month int) []int {
	if stored, ok := holidays[MonthKey(year, month)]; ok {
		return stored
	}
	return DefaultSundays(year, month)
}

// Stored returns only the explicitly configured set, with no Sunday default.
// The month-trend view marks holidays from this set alone, so an unedited
// month shows no holiday-zeroed days there; that asymmetry with Effective is
// deliberate and load-bearing for compatibility.
func Stored(holidays map[string][]int, year, month int) []int {
	return holidays[MonthKey(year, month)]
}

// Contains day membership in a holiday set.
func Contains(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// Toggle flips day membership in the month's holiday set, materializing the
// Sunday default into a stored set on first edit. Returns the updated set.
func Toggle(holidays map[string][]int, year, month, day int) []int {
	existing := Effective(holidays, year, month)

	var updated []int
	if Contains(existing, day) {
		updated = make([]int, 0, len(existing))
		for _, d := range existing {
			if d != day {
				updated = append(updated, d)
			}
		}
	} else {
		updated = append(append([]int{}, existing...), day)
	}

	holidays[MonthKey(year, month)] = updated
	return updated
}
