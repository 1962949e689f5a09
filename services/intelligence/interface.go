package intelligence

import (
	"context"
	"fmt"
	"strings"

	"smartcal/models"
	"smartcal/services/availability"
	"smartcal/services/todo"
)

// AssistantService turns free-form user text into calendar actions: meeting
// suggestions for a group, quick todo capture, or plain conversation.
type AssistantService interface {
	ProcessUserInput(ctx context.Context, userID string, req models.AIRequest) (*models.AIResponse, error)
	Reset(ctx context.Context, userID string) error
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	ctxStore *RedisContextStore
	chat     ChatModel
	avail    availability.GroupAvailabilityService
	todos    todo.TodoService
}

func NewDefaultAssistantService(
	ctxStore *RedisContextStore,
	chat ChatModel,
	avail availability.GroupAvailabilityService,
	todos todo.TodoService,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		ctxStore: ctxStore,
		chat:     chat,
		avail:    avail,
		todos:    todos,
	}
}

// historyLimit bounds the stored conversation; older turns fall off.
const historyLimit = 20

func (s *DefaultAssistantService) ProcessUserInput(ctx context.Context, userID string, req models.AIRequest) (*models.AIResponse, error) {
	aiCtx, err := s.ctxStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}
	if req.GroupID != "" {
		aiCtx.GroupID = req.GroupID
	}

	var resp *models.AIResponse
	switch detectIntent(req.Text) {
	case "schedule":
		resp, err = s.handleSchedule(ctx, aiCtx)
	case "todo":
		resp, err = s.handleTodo(ctx, userID, req.Text)
	default:
		resp, err = s.handleChat(ctx, aiCtx, req.Text)
	}
	if err != nil {
		return nil, err
	}

	aiCtx.History = append(aiCtx.History,
		models.ChatTurn{Role: "user", Text: req.Text},
		models.ChatTurn{Role: "model", Text: resp.ResponseText},
	)
	if len(aiCtx.History) > historyLimit {
		aiCtx.History = aiCtx.History[len(aiCtx.History)-historyLimit:]
	}
	if err := s.ctxStore.Set(ctx, userID, aiCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}
	return resp, nil
}

// Reset clears the stored conversation.
func (s *DefaultAssistantService) Reset(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}

// detectIntent does cheap keyword routing; everything unrecognized falls
// through to chat.
func detectIntent(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "meet") || strings.Contains(lower, "schedule") ||
		strings.Contains(lower, "when are we free") || strings.Contains(lower, "find a time"):
		return "schedule"
	case strings.Contains(lower, "remind me to") || strings.Contains(lower, "add todo") ||
		strings.Contains(lower, "add a task"):
		return "todo"
	default:
		return "chat"
	}
}

func (s *DefaultAssistantService) handleSchedule(ctx context.Context, aiCtx *models.AIContext) (*models.AIResponse, error) {
	if aiCtx.GroupID == "" {
		return &models.AIResponse{
			Intent:       "schedule",
			ResponseText: "Which group should I look at? Open a group and ask again, or include group_id.",
		}, nil
	}

	set, err := s.avail.GetRecommendations(ctx, aiCtx.GroupID, "", "", 0)
	if err != nil {
		return nil, fmt.Errorf("computing recommendations: %w", err)
	}

	var text string
	switch {
	case len(set.Recommendations) == 0:
		text = "I couldn't find any shared free time in the next few days."
	case set.Degraded:
		text = "No time works for everyone, but here are the closest options:"
	default:
		best := set.Recommendations[0]
		text = fmt.Sprintf("Best option: %s from %s to %s. A few more below.",
			best.Date, best.StartTime, best.EndTime)
	}

	return &models.AIResponse{
		Intent:          "schedule",
		ResponseText:    text,
		Recommendations: set.Recommendations,
	}, nil
}

// handleTodo captures the remainder of the message as a task title.
func (s *DefaultAssistantService) handleTodo(ctx context.Context, userID, text string) (*models.AIResponse, error) {
	title := strings.TrimSpace(text)
	for _, prefix := range []string{"remind me to", "add todo", "add a task"} {
		if idx := strings.Index(strings.ToLower(title), prefix); idx >= 0 {
			title = strings.TrimSpace(title[idx+len(prefix):])
			break
		}
	}
	if title == "" {
		return &models.AIResponse{
			Intent:       "todo",
			ResponseText: "What should the task say?",
		}, nil
	}

	created, err := s.todos.Create(ctx, userID, models.TodoInput{Title: title})
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return &models.AIResponse{
		Intent:       "todo",
		ResponseText: fmt.Sprintf("Added %q to your list.", created.Title),
	}, nil
}

func (s *DefaultAssistantService) handleChat(ctx context.Context, aiCtx *models.AIContext, text string) (*models.AIResponse, error) {
	var sb strings.Builder
	sb.WriteString("You are a concise scheduling assistant for a shared calendar app.\n")
	for _, turn := range aiCtx.History {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(text)

	reply, err := s.chat.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("chat backend: %w", err)
	}
	return &models.AIResponse{Intent: "chat", ResponseText: reply}, nil
}
