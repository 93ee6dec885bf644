package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/catalog"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/target"
)

// ShortfallRow one product missing its allocated target on the focused day.
type ShortfallRow struct {
	Metric   string       `json:"metric"`
	Target   int          `json:"target"`
	Achieved float64      `json:"achieved"`
	Gap      float64      `json:"gap"`
	Status   model.Status `json:"status"`
}

// TeamAudit per-team section of a single-day audit.
//
// PlanUploaded is false when the team has no master rows at all, which is a
// distinct state from "all targets met".
type TeamAudit struct {
	Team         string         `json:"team"`
	PlanUploaded bool           `json:"planUploaded"`
	AllMet       bool           `json:"allMet"`
	Target       int            `json:"target"`
	Achieved     float64        `json:"achieved"`
	Shortfalls   []ShortfallRow `json:"shortfalls"`
}

// DayAudit full shortfall breakdown for one calendar day.
type DayAudit struct {
	Year           int         `json:"year"`
	Month          int         `json:"month"`
	Day            int         `json:"day"`
	Label          string      `json:"label"`
	LastDay        bool        `json:"lastDay"`
	HasDailyReport bool        `json:"hasDailyReport"`
	Teams          []TeamAudit `json:"teams"`
}

// TrendPoint one day of the month-trend series.
type TrendPoint struct {
	Day              int                `json:"day"`
	Target           int                `json:"target"`
	Teams            map[string]float64 `json:"teams"`
	TotalAchievement float64            `json:"totalAchievement"`
	IsHoliday        bool               `json:"isHoliday"`
}

// TrendSummary footer aggregates over a full trend series.
type TrendSummary struct {
	TargetTotal   int     `json:"targetTotal"`
	AchievedTotal float64 `json:"achievedTotal"`
	YieldPercent  float64 `json:"yieldPercent"`
}

// DayLabel formats a day the way daily report headers embed it,
// e.g. "January 05, 2026".
func DayLabel(year, month, day int) string {
	return fmt.Sprintf("%s %02d, %d", time.Month(month).String(), day, year)
}

// MatchesDay reports whether a stored report-date header refers to the
// labelled day. Matching is lower-cased substring containment, never date
// parsing: headers carry free-form weekday prefixes ("Thursday, January 01,
// 2026") that containment tolerates. Every date comparison in this package
// goes through here.
func MatchesDay(reportDate, label string) bool {
	if reportDate == "" {
		return false
	}
	return strings.Contains(strings.ToLower(reportDate), strings.ToLower(label))
}

// BuildDayAudit computes the per-team shortfall audit for one day.
//
// Targets are allocated on the day regardless of holiday status; only the
// month-trend series zeroes holidays. The achieved value for a master row is
// the first daily row sharing its metric, searched across all teams.
func BuildDayAudit(records []model.Record, year, month, day, workingDays int) DayAudit {
	label := DayLabel(year, month, day)

	audit := DayAudit{
		Year:    year,
		Month:   month,
		Day:     day,
		Label:   label,
		LastDay: calendar.IsLastDay(year, month, day),
	}
	for _, rec := range records {
		if MatchesDay(rec.ReportDate, label) {
			audit.HasDailyReport = true
			break
		}
	}

	for _, team := range catalog.SalesTeams {
		ta := TeamAudit{Team: team, Shortfalls: []ShortfallRow{}}

		for _, rec := range records {
			if rec.Team != team || rec.Plan <= 0 || rec.ReportDate != "" {
				continue
			}
			ta.PlanUploaded = true

			dayTarget := target.Daily(rec.Plan, day, year, month, workingDays)
			achieved := achievedFor(records, rec.Metric, label)
			ta.Target += dayTarget
			ta.Achieved += achieved

			gap := float64(dayTarget) - achieved
			if gap <= 0 {
				continue
			}
			status := model.StatusOnTrack
			switch {
			case gap > 50:
				status = model.StatusCritical
			case gap > 10:
				status = model.StatusWarning
			}
			ta.Shortfalls = append(ta.Shortfalls, ShortfallRow{
				Metric:   rec.Metric,
				Target:   dayTarget,
				Achieved: achieved,
				Gap:      gap,
				Status:   status,
			})
		}

		ta.AllMet = ta.PlanUploaded && len(ta.Shortfalls) == 0
		audit.Teams = append(audit.Teams, ta)
	}
	return audit
}

// BuildMonthTrend computes the day-by-day trend series for a month.
//
// Holiday zeroing uses only the stored holiday set: a month whose holidays
// were never edited gets no Sunday defaults here, unlike working-day math.
func BuildMonthTrend(records []model.Record, holidays model.HolidaysMap, year, month, workingDays int) []TrendPoint {
	stored := calendar.Stored(holidays, year, month)

	var totalPlan float64
	for _, rec := range records {
		if rec.Department == model.DepartmentSales && rec.Plan > 0 && rec.ReportDate == "" {
			totalPlan += rec.Plan
		}
	}

	days := calendar.DaysInMonth(year, month)
	points := make([]TrendPoint, 0, days)
	for day := 1; day <= days; day++ {
		label := DayLabel(year, month, day)
		isHoliday := calendar.Contains(stored, day)

		dayTarget := 0
		if !isHoliday {
			dayTarget = target.Daily(totalPlan, day, year, month, workingDays)
		}

		teams := make(map[string]float64, len(catalog.SalesTeams))
		total := 0.0
		for _, team := range catalog.SalesTeams {
			sum := 0.0
			for _, rec := range records {
				if rec.Team == team && MatchesDay(rec.ReportDate, label) {
					sum += rec.Actual
				}
			}
			teams[team] = sum
			total += sum
		}

		points = append(points, TrendPoint{
			Day:              day,
			Target:           dayTarget,
			Teams:            teams,
			TotalAchievement: total,
			IsHoliday:        isHoliday,
		})
	}
	return points
}

// Summarize folds a trend series into its footer aggregates.
func Summarize(points []TrendPoint) TrendSummary {
	var s TrendSummary
	for _, p := range points {
		s.TargetTotal += p.Target
		s.AchievedTotal += p.TotalAchievement
	}
	if s.TargetTotal > 0 {
		s.YieldPercent = s.AchievedTotal / float64(s.TargetTotal) * 100
	}
	return s
}

// SyncedDays lists the days of a month that have at least one daily record.
func SyncedDays(records []model.Record, year, month int) []int {
	var days []int
	for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
		label := DayLabel(year, month, day)
		for _, rec := range records {
			if MatchesDay(rec.ReportDate, label) {
				days = append(days, day)
				break
			}
		}
	}
	return days
}

func achievedFor(records []model.Record, metric, label string) float64 {
	for _, rec := range records {
		if rec.Metric == metric && MatchesDay(rec.ReportDate, label) {
			return rec.Actual
		}
	}
	return 0
}
