package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRecords returns the canonical record list.
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"records": h.data.Records(),
		"count":   h.data.Count(),
	})
}

// ResetRecords discards the dataset and restores the seed records.
// POST /api/records/reset
func (h *Handler) ResetRecords(c *gin.Context) {
	h.data.Reset()
	c.JSON(http.StatusOK, gin.H{
		"records": h.data.Records(),
		"count":   h.data.Count(),
	})
}
