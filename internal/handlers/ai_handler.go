package handlers

import (
	"net/http"
	"strconv"

	"github.com/engagecrm/engage-backend/internal/services"
	"github.com/engagecrm/engage-backend/pkg/genai"
	"github.com/gin-gonic/gin"
)

// AIHandler handles assistant HTTP requests
type AIHandler struct {
	aiService *services.AIService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// SuggestMessages handles POST /ai/suggest-messages
func (h *AIHandler) SuggestMessages(c *gin.Context) {
	var req struct {
		Objective string `json:"objective" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	messages, err := h.aiService.SuggestMessages(c.Request.Context(), req.Objective)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Summarize handles POST /ai/summarize
func (h *AIHandler) Summarize(c *gin.Context) {
	var req genai.PerformanceStats
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.aiService.SummarizePerformance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// TranslateSegment handles POST /ai/translate-segment
func (h *AIHandler) TranslateSegment(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	translated, err := h.aiService.TranslateSegment(c.Request.Context(), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, translated)
}

// MarketingTips handles GET /ai/marketing-tips
func (h *AIHandler) MarketingTips(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))

	tips, err := h.aiService.SuggestMarketingTips(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}
