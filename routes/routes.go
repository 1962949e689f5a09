package routes

import (
	"net/http"
	"time"

	"smartcal/handlers"
	"smartcal/middleware"
	"smartcal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.DeviceDetailsMiddleware())
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/fcm-token", hb.SetFCMTokenHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}
}

// RegisterEventRoutes registers calendar CRUD endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	api.Use(middleware.DeviceDetailsMiddleware())
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.CreateEventHandler)
		api.GET("", hb.ListEventsHandler)
		api.POST("/check-conflicts", hb.CheckConflictsHandler)
		api.GET("/:id", hb.GetEventHandler)
		api.PUT("/:id", hb.UpdateEventHandler)
		api.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterTodoRoutes registers task endpoints.
func RegisterTodoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/todos")
	api.Use(middleware.DeviceDetailsMiddleware())
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.CreateTodoHandler)
		api.GET("", hb.ListTodosHandler)
		api.PUT("/:id", hb.UpdateTodoHandler)
		api.DELETE("/:id", hb.DeleteTodoHandler)
	}
}

// RegisterGroupRoutes registers group management plus the availability
// engine endpoints that hang off a group.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	api.Use(middleware.DeviceDetailsMiddleware())
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.CreateGroupHandler)
		api.GET("", hb.ListGroupsHandler)
		api.POST("/join", hb.JoinGroupHandler)
		api.GET("/:id", hb.GetGroupHandler)
		api.GET("/:id/members", hb.GroupMembersHandler)
		api.POST("/:id/leave", hb.LeaveGroupHandler)
		api.DELETE("/:id", hb.DeleteGroupHandler)

		api.GET("/:id/availability", hb.GroupAvailabilityHandler)
		api.GET("/:id/recommendations", hb.RecommendationsHandler)
		api.POST("/:id/plan-meeting", hb.PlanMeetingHandler)
	}
}

// RegisterAssistantRoutes registers assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	api.Use(middleware.DeviceDetailsMiddleware())
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("/chat", hb.AssistantChatHandler)
		api.POST("/reset", hb.AssistantResetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic monitor's snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm SmartCal",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID", "X-Device-Name"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterTodoRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
