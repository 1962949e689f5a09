package handlers

import (
	"net/http"

	userRepoPkg "smartcal/database/repository/user"
	"smartcal/models"
	"smartcal/services/group"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateGroupHandler makes a new group owned by the caller.
func CreateGroupHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.Create(c.Request.Context(), userID, req.Name)
		if err != nil {
			logger.Warn("group create failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetGroupHandler returns one group.
func GetGroupHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

// ListGroupsHandler returns the groups the caller belongs to.
func ListGroupsHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		groups, err := svc.ListForUser(c.Request.Context(), userID)
		if err != nil {
			logger.Error("group list failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list groups"})
			return
		}
		if groups == nil {
			groups = []models.Group{}
		}
		c.JSON(http.StatusOK, gin.H{"groups": groups})
	}
}

// GroupMembersHandler returns the resolved member list of a group. IDs that
// no longer resolve to a user are omitted.
func GroupMembersHandler(svc group.GroupService, users userRepoPkg.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		g, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}

		members, err := users.GetMembers(c.Request.Context(), g.MemberIDs)
		if err != nil {
			logger.Error("member lookup failed", zap.String("groupId", g.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve members"})
			return
		}
		if members == nil {
			members = []models.Member{}
		}
		c.JSON(http.StatusOK, gin.H{"members": members})
	}
}

// JoinGroupHandler adds the caller to a group via invite code.
func JoinGroupHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		var req struct {
			InviteCode string `json:"invite_code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		joined, err := svc.Join(c.Request.Context(), userID, req.InviteCode)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, joined)
	}
}

// LeaveGroupHandler removes the caller from a group.
func LeaveGroupHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		if err := svc.Leave(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "left"})
	}
}

// DeleteGroupHandler removes a group. Owner only.
func DeleteGroupHandler(svc group.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		if err := svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
