package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/tuning/domain"
)

// TuningHandler holds the tuning service.
type TuningHandler struct {
	tuningService config.TuningService
}

// NewTuningHandler creates a new TuningHandler.
func NewTuningHandler(tuningService config.TuningService) *TuningHandler {
	return &TuningHandler{tuningService: tuningService}
}

// GetTuningHandler handles fetching the current tuning values.
func (h *TuningHandler) GetTuningHandler(c *gin.Context) {
	tuning, err := h.tuningService.LoadTuning()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tuning: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, tuning)
}

// SaveTuningHandler handles saving updated tuning values.
func (h *TuningHandler) SaveTuningHandler(c *gin.Context) {
	var tuning domain.Tuning
	if err := c.ShouldBindJSON(&tuning); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tuningService.SaveTuning(&tuning); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tuning: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tuning saved successfully"})
}
