package handlers

import (
	"net/http"

	"smartcal/models"
	"smartcal/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantChatHandler routes free-form text through the assistant.
func AssistantChatHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var req models.AIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.ProcessUserInput(c.Request.Context(), userID, req)
		if err != nil {
			logger.Error("assistant request failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable right now"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AssistantResetHandler clears the caller's conversation context.
func AssistantResetHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		if err := svc.Reset(c.Request.Context(), userID); err != nil {
			logger.Error("assistant reset failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}
