package handlers

import (
	userRepoPkg "smartcal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth and account endpoints
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	SetFCMTokenHandler   gin.HandlerFunc
	DeleteAccountHandler gin.HandlerFunc

	// Event endpoints
	CreateEventHandler    gin.HandlerFunc
	GetEventHandler       gin.HandlerFunc
	ListEventsHandler     gin.HandlerFunc
	UpdateEventHandler    gin.HandlerFunc
	DeleteEventHandler    gin.HandlerFunc
	CheckConflictsHandler gin.HandlerFunc

	// Todo endpoints
	CreateTodoHandler gin.HandlerFunc
	ListTodosHandler  gin.HandlerFunc
	UpdateTodoHandler gin.HandlerFunc
	DeleteTodoHandler gin.HandlerFunc

	// Group endpoints
	CreateGroupHandler  gin.HandlerFunc
	GetGroupHandler     gin.HandlerFunc
	ListGroupsHandler   gin.HandlerFunc
	JoinGroupHandler    gin.HandlerFunc
	LeaveGroupHandler   gin.HandlerFunc
	DeleteGroupHandler  gin.HandlerFunc
	GroupMembersHandler gin.HandlerFunc

	// Availability engine endpoints
	GroupAvailabilityHandler gin.HandlerFunc
	RecommendationsHandler   gin.HandlerFunc
	PlanMeetingHandler       gin.HandlerFunc

	// Assistant endpoints
	AssistantChatHandler  gin.HandlerFunc
	AssistantResetHandler gin.HandlerFunc
}
