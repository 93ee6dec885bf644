package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/classifier"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

// UploadResponse successful upload outcome
type UploadResponse struct {
	Updated    int    `json:"updated"`
	Kind       string `json:"kind"`
	ReportDate string `json:"reportDate,omitempty"`
}

// UploadMaster ingests a master-plan workbook.
// POST /api/upload/master
func (h *Handler) UploadMaster(c *gin.Context) {
	h.upload(c, model.UploadMaster)
}

// UploadDaily ingests a daily-achievement workbook.
// POST /api/upload/daily
func (h *Handler) UploadDaily(c *gin.Context) {
	h.upload(c, model.UploadDaily)
}

// upload runs the shared ingest pipeline. Structural rejections abort with
// zero mutation; only a fully classified workbook reaches the dataset.
func (h *Handler) upload(c *gin.Context, kind model.UploadKind) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file was uploaded"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read the uploaded file"})
		return
	}
	defer f.Close()

	grid, err := classifier.ReadSalesGrid(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := classifier.Classify(grid, kind)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, classifier.ErrNoProducts) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	updated := h.data.ApplyUpload(res)

	kindName := "master"
	if res.Kind == model.UploadDaily {
		kindName = "daily"
	}
	c.JSON(http.StatusOK, UploadResponse{
		Updated:    updated,
		Kind:       kindName,
		ReportDate: res.ReportDate,
	})
}
