package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToggleHolidayRequest toggle one day's holiday flag
type ToggleHolidayRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
	Day   int `json:"day" binding:"required"`
}

// ToggleHoliday flips a day between working and holiday. A finalized month
// rejects the edit unless the admin override is active.
// POST /api/holidays/toggle
func (h *Handler) ToggleHoliday(c *gin.Context) {
	var req ToggleHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, ok := h.data.ToggleHoliday(req.Year, req.Month, req.Day)
	c.JSON(http.StatusOK, gin.H{
		"changed":     ok,
		"locked":      h.data.Locked(req.Year, req.Month),
		"holidays":    days,
		"workingDays": h.data.WorkingDays(req.Year, req.Month),
	})
}

// FinalizeMonthRequest lock a month's calendar
type FinalizeMonthRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

// FinalizeMonth locks a month's holiday configuration.
// POST /api/holidays/finalize
func (h *Handler) FinalizeMonth(c *gin.Context) {
	var req FinalizeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.data.Finalize(req.Year, req.Month)
	c.JSON(http.StatusOK, gin.H{
		"locked":      true,
		"workingDays": h.data.WorkingDays(req.Year, req.Month),
	})
}

// OverrideRequest activate or drop the admin override
type OverrideRequest struct {
	PIN    string `json:"pin"`
	Active *bool  `json:"active"`
}

// SetOverride gates the session override behind the shared PIN. The PIN is
// compared verbatim; this is workflow friction, not authentication.
// POST /api/admin/override
func (h *Handler) SetOverride(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	if active && req.PIN != h.pin {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid override PIN"})
		return
	}

	h.data.SetOverride(active)
	c.JSON(http.StatusOK, gin.H{"override": active})
}
