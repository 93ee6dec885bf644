package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Summarize produces an executive summary of the Sales dataset. The call
// always succeeds; summarizer failures surface as the fallback payload.
// POST /api/summary
func (h *Handler) Summarize(c *gin.Context) {
	res := h.summarizer.Summarize(c.Request.Context(), h.data.Records())
	c.JSON(http.StatusOK, res)
}
