package target

import (
	"math"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
)

// LastDayWeight the final calendar day of a month carries this many "normal"
// days worth of target, modeling the end-of-month closing rush.
const LastDayWeight = 3.5

// minWorkingDays floor applied when a month is fully holidayed, keeping the
// allocation divisor non-zero.
const minWorkingDays = 26

// WorkingDays counts the days of the month not present in holidays.
func WorkingDays(year, month int, holidays []int) int {
	count := 0
	for d := 1; d <= calendar.DaysInMonth(year, month); d++ {
		if !calendar.Contains(holidays, d) {
			count++
		}
	}
	if count == 0 {
		return minWorkingDays
	}
	return count
}

// Daily computes the weighted share of totalPlan assigned to one calendar
// day. Every day including holidays gets an allocation when called directly;
// callers that need holiday-zeroed targets check the calendar themselves.
//
// Each day is rounded independently, so the per-day values do not sum back
// to totalPlan exactly; the drift is bounded by the number of days and is
// accepted.
func Daily(totalPlan float64, day, year, month, workingDays int) int {
	totalWeights := float64(workingDays-1) + LastDayWeight

	if calendar.IsLastDay(year, month, day) {
		return int(math.Round(totalPlan / totalWeights * LastDayWeight))
	}
	return int(math.Round(totalPlan / totalWeights))
}
