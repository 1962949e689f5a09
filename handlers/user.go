package handlers

import (
	"net/http"

	"smartcal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		profile, err := svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// SetFCMTokenHandler stores the device's push token on the user.
func SetFCMTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var req struct {
			Token string `json:"token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SetFCMToken(c.Request.Context(), userID, req.Token); err != nil {
			logger.Error("Failed to store FCM token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// DeleteAccountHandler removes the authenticated user's account.
func DeleteAccountHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		if err := svc.DeleteAccount(c.Request.Context(), userID); err != nil {
			logger.Error("Failed to delete account", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
