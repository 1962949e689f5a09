package handlers

import (
	"net/http"

	"smartcal/models"
	"smartcal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler creates an account and returns the session token.
func RegisterHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.UserRegistration
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// LoginHandler verifies credentials and returns the session token.
func LoginHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.UserCredentials
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			logger.Warn("login failed", zap.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// LogoutHandler invalidates the current device's session.
func LogoutHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")
		deviceID := c.GetString("deviceID")

		if err := svc.Logout(c.Request.Context(), userID, deviceID); err != nil {
			logger.Error("logout failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}
