package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"smartcal/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupAvailabilityHandler computes the group's classified slots over
// [start_date, end_date] (defaults to the configured range from today).
func GroupAvailabilityHandler(svc availability.GroupAvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		groupID := c.Param("id")

		result, err := svc.GetGroupAvailability(
			c.Request.Context(),
			groupID,
			c.Query("start_date"),
			c.Query("end_date"),
		)
		if err != nil {
			status := availabilityErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("availability query failed", zap.String("groupId", groupID), zap.Error(err))
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// RecommendationsHandler ranks the group's slots into best and alternative
// meeting suggestions. duration (minutes) is optional.
func RecommendationsHandler(svc availability.GroupAvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		groupID := c.Param("id")

		targetDuration := 0
		if raw := c.Query("duration"); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil || d < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a non-negative integer"})
				return
			}
			targetDuration = d
		}

		set, err := svc.GetRecommendations(
			c.Request.Context(),
			groupID,
			c.Query("start_date"),
			c.Query("end_date"),
			targetDuration,
		)
		if err != nil {
			status := availabilityErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("recommendation query failed", zap.String("groupId", groupID), zap.Error(err))
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, set)
	}
}

// availabilityErrorStatus maps engine request failures to HTTP statuses.
// Everything else is a server error; degraded and partial results come back
// as 200s with flags, never as errors.
func availabilityErrorStatus(err error) int {
	switch {
	case errors.Is(err, availability.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, availability.ErrEmptyGroup),
		errors.Is(err, availability.ErrRangeTooLarge),
		errors.Is(err, availability.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
