package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse system status response
type StatusResponse struct {
	Initialized  bool `json:"initialized"`  // canonical dataset present
	Records      int  `json:"records"`      // total canonical records
	SalesRecords int  `json:"salesRecords"` // Sales-department records
	Override     bool `json:"override"`     // admin override active
}

// GetStatus returns the system status.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Initialized:  h.data.Count() > 0,
		Records:      h.data.Count(),
		SalesRecords: h.data.SalesCount(),
		Override:     h.data.Override(),
	})
}
