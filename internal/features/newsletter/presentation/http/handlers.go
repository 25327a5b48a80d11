package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chisokulab/backend/internal/features/newsletter/application"
	"chisokulab/backend/internal/features/newsletter/domain"
)

// NewsletterHandler holds the newsletter service.
type NewsletterHandler struct {
	newsletterService application.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService application.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// SubscribeHandler handles POST /api/subscribe.
func (h *NewsletterHandler) SubscribeHandler(c *gin.Context) {
	var req domain.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email address"})
		return
	}

	subscription, err := h.newsletterService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		log.Println("[ERROR] Subscription failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully subscribed!",
		"data":    subscription,
	})
}

// ContactHandler handles POST /api/contact.
func (h *NewsletterHandler) ContactHandler(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.newsletterService.SendContactMessage(c.Request.Context(), &req); err != nil {
		log.Println("[ERROR] Contact message failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}
