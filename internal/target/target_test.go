package target

import (
	"math"
	"testing"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
)

func TestWorkingDays(t *testing.T) {
	t.Parallel()

	// January 2026: 31 days, 4 Sundays.
	if got := WorkingDays(2026, 1, calendar.DefaultSundays(2026, 1)); got != 27 {
		t.Fatalf("working days = %d, want 27", got)
	}
	if got := WorkingDays(2026, 1, nil); got != 31 {
		t.Fatalf("working days = %d, want 31", got)
	}
}

func TestWorkingDays_FullyHolidayedFloor(t *testing.T) {
	t.Parallel()

	all := make([]int, 0, 31)
	for d := 1; d <= 31; d++ {
		all = append(all, d)
	}
	if got := WorkingDays(2026, 1, all); got != 26 {
		t.Fatalf("working days floor = %d, want 26", got)
	}
}

func TestDaily_FlatMonth(t *testing.T) {
	t.Parallel()

	// 26 working days: totalWeights = 25 + 3.5 = 28.5.
	// Normal day ~= 2600/28.5 ~= 91, last day ~= 3.5x that.
	normal := Daily(2600, 10, 2026, 2, 26)
	last := Daily(2600, 28, 2026, 2, 26)

	if normal != 91 {
		t.Fatalf("normal day = %d, want 91", normal)
	}
	if last != 319 {
		t.Fatalf("last day = %d, want 319", last)
	}
	if math.Abs(float64(last)-3.5*float64(normal)) > 3.5 {
		t.Fatalf("last day weight off: %d vs %d", last, normal)
	}
}

func TestDaily_ZeroHolidayJanuary(t *testing.T) {
	t.Parallel()

	// 31 working days: totalWeights = 30 + 3.5 = 32.5.
	if got := Daily(3100, 15, 2026, 1, 31); got != 95 {
		t.Fatalf("non-last day = %d, want 95", got)
	}
	if got := Daily(3100, 31, 2026, 1, 31); got != 334 {
		t.Fatalf("last day = %d, want 334", got)
	}
}

func TestDaily_MonthSumDriftBounded(t *testing.T) {
	t.Parallel()

	const plan = 2600.0
	days := calendar.DaysInMonth(2026, 1)
	workingDays := WorkingDays(2026, 1, nil)

	sum := 0
	for d := 1; d <= days; d++ {
		sum += Daily(plan, d, 2026, 1, workingDays)
	}
	if math.Abs(float64(sum)-plan) > float64(days) {
		t.Fatalf("rounding drift too large: sum=%d plan=%.0f", sum, plan)
	}
}

func TestDaily_HolidayStillAllocatedDirectly(t *testing.T) {
	t.Parallel()

	// Direct calls allocate on every day; holiday zeroing is the caller's
	// concern (the month trend does it, the day audit does not).
	if got := Daily(3100, 4, 2026, 1, 27); got == 0 {
		t.Fatalf("direct allocation should not zero holidays")
	}
}
