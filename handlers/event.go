package handlers

import (
	"net/http"

	"smartcal/models"
	"smartcal/services/event"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateEventHandler persists a new event. The response carries any
// conflicting intervals already on the calendar; the event is saved
// regardless.
func CreateEventHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Create(c.Request.Context(), userID, in)
		if err != nil {
			logger.Warn("event create failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// GetEventHandler returns one event by ID.
func GetEventHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		ev, err := svc.Get(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

// ListEventsHandler returns the user's events in [start_date, end_date].
func ListEventsHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		startDate := c.Query("start_date")
		endDate := c.Query("end_date")
		if startDate == "" || endDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
			return
		}

		events, err := svc.ListRange(c.Request.Context(), userID, startDate, endDate)
		if err != nil {
			logger.Warn("event list failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if events == nil {
			events = []models.Event{}
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// CheckConflictsHandler runs the conflict check for a candidate event without
// saving it, so clients can warn before the user commits.
func CheckConflictsHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		conflicts, err := svc.CheckConflicts(c.Request.Context(), userID, in)
		if err != nil {
			logger.Warn("conflict check failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if conflicts == nil {
			conflicts = []models.BusyInterval{}
		}
		c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
	}
}

// UpdateEventHandler replaces an event's fields.
func UpdateEventHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Update(c.Request.Context(), userID, c.Param("id"), in)
		if err != nil {
			logger.Warn("event update failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteEventHandler removes an event.
func DeleteEventHandler(svc event.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		if err := svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
