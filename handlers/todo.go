package handlers

import (
	"net/http"

	"smartcal/models"
	"smartcal/services/todo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateTodoHandler adds a task to the user's list.
func CreateTodoHandler(svc todo.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var in models.TodoInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.Create(c.Request.Context(), userID, in)
		if err != nil {
			logger.Warn("todo create failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListTodosHandler returns the user's tasks. Pass include_done=true to get
// completed ones too.
func ListTodosHandler(svc todo.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")
		includeDone := c.Query("include_done") == "true"

		todos, err := svc.List(c.Request.Context(), userID, includeDone)
		if err != nil {
			logger.Error("todo list failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list todos"})
			return
		}
		if todos == nil {
			todos = []models.Todo{}
		}
		c.JSON(http.StatusOK, gin.H{"todos": todos})
	}
}

// UpdateTodoHandler replaces a task's fields.
func UpdateTodoHandler(svc todo.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		userID := c.GetString("userID")

		var in models.TodoInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.Update(c.Request.Context(), userID, c.Param("id"), in)
		if err != nil {
			logger.Warn("todo update failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteTodoHandler removes a task.
func DeleteTodoHandler(svc todo.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		if err := svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
