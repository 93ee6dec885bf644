package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/report"
)

// MonthResponse calendar metadata for one month
type MonthResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Key          string `json:"key"`
	DaysInMonth  int    `json:"daysInMonth"`
	FirstWeekday int    `json:"firstWeekday"`
	Holidays     []int  `json:"holidays"`
	Locked       bool   `json:"locked"`
	WorkingDays  int    `json:"workingDays"`
	SyncedDays   []int  `json:"syncedDays"`
}

// GetMonth returns calendar metadata for a month key such as "2026-1".
// GET /api/months/:key
func (h *Handler) GetMonth(c *gin.Context) {
	year, month, err := calendar.ParseMonthKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{
		Year:         year,
		Month:        month,
		Key:          calendar.MonthKey(year, month),
		DaysInMonth:  calendar.DaysInMonth(year, month),
		FirstWeekday: calendar.FirstWeekday(year, month),
		Holidays:     h.data.EffectiveHolidays(year, month),
		Locked:       h.data.Locked(year, month),
		WorkingDays:  h.data.WorkingDays(year, month),
		SyncedDays:   report.SyncedDays(h.data.Records(), year, month),
	})
}
