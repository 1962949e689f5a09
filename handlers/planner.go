package handlers

import (
	"net/http"

	"smartcal/models"
	"smartcal/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanMeetingHandler turns a chosen recommendation into a meeting plan with
// venue suggestions.
func PlanMeetingHandler(svc planner.MeetingPlanner) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		groupID := c.Param("id")

		var in models.PlanMeetingInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		plan, err := svc.PlanMeeting(c.Request.Context(), groupID, in)
		if err != nil {
			logger.Warn("meeting planning failed", zap.String("groupId", groupID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}
