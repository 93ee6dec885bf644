package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/report"
)

func intQuery(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing query parameter: " + name})
		return 0, false
	}
	return v, true
}

// GetDayAudit returns the per-team shortfall audit for one day.
// GET /api/shortfall/day?year=2026&month=1&day=15
func (h *Handler) GetDayAudit(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	day, ok := intQuery(c, "day")
	if !ok {
		return
	}
	if month < 1 || month > 12 || day < 1 || day > calendar.DaysInMonth(year, month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date out of range"})
		return
	}

	audit := report.BuildDayAudit(h.data.Records(), year, month, day, h.data.WorkingDays(year, month))
	c.JSON(http.StatusOK, audit)
}

// GetMonthTrend returns the day-by-day trend series for one month.
// GET /api/shortfall/trend?year=2026&month=1
func (h *Handler) GetMonthTrend(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date out of range"})
		return
	}

	holidays := model.HolidaysMap{}
	if stored := h.data.StoredHolidays(year, month); stored != nil {
		holidays[calendar.MonthKey(year, month)] = stored
	}

	points := report.BuildMonthTrend(h.data.Records(), holidays, year, month, h.data.WorkingDays(year, month))
	c.JSON(http.StatusOK, gin.H{
		"days":    points,
		"summary": report.Summarize(points),
	})
}
