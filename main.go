// File: smartcal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcal/config"
	"smartcal/cron"
	"smartcal/database"
	eventRepoPkg "smartcal/database/repository/event"
	groupRepoPkg "smartcal/database/repository/group"
	todoRepoPkg "smartcal/database/repository/todo"
	userRepoPkg "smartcal/database/repository/user"
	"smartcal/handlers"
	"smartcal/routes"
	"smartcal/services/availability"
	"smartcal/services/event"
	"smartcal/services/group"
	"smartcal/services/intelligence"
	"smartcal/services/notification"
	"smartcal/services/places"
	"smartcal/services/planner"
	"smartcal/services/tasks"
	"smartcal/services/todo"
	"smartcal/services/user"
	"smartcal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitAssistantCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	todoRepo := todoRepoPkg.NewMongoTodoRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()

	// services.
	userService := user.NewDefaultUserService(userRepo)
	reminderClient := tasks.NewReminderClient()
	eventService := event.NewDefaultEventService(eventRepo, reminderClient)
	todoService := todo.NewDefaultTodoService(todoRepo)
	groupService := group.NewDefaultGroupService(groupRepo)

	calendarStore := &availability.RepoCalendarStore{Repo: eventRepo}
	availabilityService := availability.NewDefaultAvailabilityService(groupRepo, userRepo, calendarStore)

	placesClient := places.NewGooglePlacesClient(config.AppConfig.GoogleAPIKey)
	plannerService := planner.NewDefaultMeetingPlanner(availabilityService, placesClient)

	ctxStore := intelligence.NewRedisContextStore(utils.GetAssistantCacheClient(), 30*time.Minute)
	chatModel := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	assistantService := intelligence.NewDefaultAssistantService(ctxStore, chatModel, availabilityService, todoService)

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetAssistantCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth and account endpoints.
		RegisterHandler:      handlers.RegisterHandler(userService),
		LoginHandler:         handlers.LoginHandler(userService),
		LogoutHandler:        handlers.LogoutHandler(userService),
		GetProfileHandler:    handlers.GetProfileHandler(userService),
		SetFCMTokenHandler:   handlers.SetFCMTokenHandler(userService),
		DeleteAccountHandler: handlers.DeleteAccountHandler(userService),

		// Event endpoints.
		CreateEventHandler:    handlers.CreateEventHandler(eventService),
		GetEventHandler:       handlers.GetEventHandler(eventService),
		ListEventsHandler:     handlers.ListEventsHandler(eventService),
		UpdateEventHandler:    handlers.UpdateEventHandler(eventService),
		DeleteEventHandler:    handlers.DeleteEventHandler(eventService),
		CheckConflictsHandler: handlers.CheckConflictsHandler(eventService),

		// Todo endpoints.
		CreateTodoHandler: handlers.CreateTodoHandler(todoService),
		ListTodosHandler:  handlers.ListTodosHandler(todoService),
		UpdateTodoHandler: handlers.UpdateTodoHandler(todoService),
		DeleteTodoHandler: handlers.DeleteTodoHandler(todoService),

		// Group endpoints.
		CreateGroupHandler:  handlers.CreateGroupHandler(groupService),
		GetGroupHandler:     handlers.GetGroupHandler(groupService),
		ListGroupsHandler:   handlers.ListGroupsHandler(groupService),
		JoinGroupHandler:    handlers.JoinGroupHandler(groupService),
		LeaveGroupHandler:   handlers.LeaveGroupHandler(groupService),
		DeleteGroupHandler:  handlers.DeleteGroupHandler(groupService),
		GroupMembersHandler: handlers.GroupMembersHandler(groupService, userRepo),

		// Availability engine endpoints.
		GroupAvailabilityHandler: handlers.GroupAvailabilityHandler(availabilityService),
		RecommendationsHandler:   handlers.RecommendationsHandler(availabilityService),
		PlanMeetingHandler:       handlers.PlanMeetingHandler(plannerService),

		// Assistant endpoints.
		AssistantChatHandler:  handlers.AssistantChatHandler(assistantService),
		AssistantResetHandler: handlers.AssistantResetHandler(assistantService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
