package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chisokulab/backend/internal/features/amplifier/application"
	"chisokulab/backend/internal/features/amplifier/domain"
)

// AmplifierHandler holds the amplifier-facing application services.
type AmplifierHandler struct {
	vagueness application.VaguenessService
	questions application.QuestionsService
	amplifier application.AmplifierService
}

// NewAmplifierHandler creates a new AmplifierHandler.
func NewAmplifierHandler(vagueness application.VaguenessService, questions application.QuestionsService, amplifier application.AmplifierService) *AmplifierHandler {
	return &AmplifierHandler{
		vagueness: vagueness,
		questions: questions,
		amplifier: amplifier,
	}
}

// ClarifyHandler handles POST /api/clarify: classify the input and, when it
// is vague, return clarifying questions with their provenance.
func (h *AmplifierHandler) ClarifyHandler(c *gin.Context) {
	var req domain.ClarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required"})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required"})
		return
	}

	assessment := h.vagueness.Classify(req.Input)
	if !assessment.IsVague {
		c.JSON(http.StatusOK, domain.ClarifyResponse{
			IsVague:   false,
			Questions: []domain.ClarifyingQuestion{},
		})
		return
	}

	result, err := h.questions.Generate(c.Request.Context(), req.Input)
	if err != nil {
		log.Println("[ERROR] Failed to generate clarifying questions:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate questions"})
		return
	}

	c.JSON(http.StatusOK, domain.ClarifyResponse{
		IsVague:   true,
		Questions: result.Questions,
		Source:    result.Source,
	})
}

// AmplifyHandler handles POST /api/amplify: expand the input into a
// detailed prompt via the provider chain or the template fallback.
func (h *AmplifierHandler) AmplifyHandler(c *gin.Context) {
	var req domain.AmplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required and must be a non-empty string"})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required and must be a non-empty string"})
		return
	}

	result, err := h.amplifier.Amplify(c.Request.Context(), req.Input, req.ClarifyingAnswers)
	if errors.Is(err, domain.ErrEmptyInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required and must be a non-empty string"})
		return
	}
	if err != nil {
		log.Println("[ERROR] Amplification failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
