package api

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/dataset"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/summary"
)

// Handler API handler
type Handler struct {
	data       *dataset.Service
	summarizer *summary.Service
	pin        string
}

// NewHandler creates the API handler.
func NewHandler(data *dataset.Service, summarizer *summary.Service, overridePIN string) *Handler {
	return &Handler{
		data:       data,
		summarizer: summarizer,
		pin:        overridePIN,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// system status
	router.GET("/status", h.GetStatus)

	// spreadsheet ingestion
	router.POST("/upload/master", h.UploadMaster)
	router.POST("/upload/daily", h.UploadDaily)

	// canonical records
	router.GET("/records", h.ListRecords)
	router.POST("/records/reset", h.ResetRecords)

	// calendar
	router.GET("/months/:key", h.GetMonth)
	router.POST("/holidays/toggle", h.ToggleHoliday)
	router.POST("/holidays/finalize", h.FinalizeMonth)
	router.POST("/admin/override", h.SetOverride)

	// reporting
	router.GET("/shortfall/day", h.GetDayAudit)
	router.GET("/shortfall/trend", h.GetMonthTrend)
	router.POST("/summary", h.Summarize)
}
