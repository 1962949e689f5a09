package models

// AIRequest is the payload coming from the frontend into /api/assistant/chat.
type AIRequest struct {
	Text    string `json:"text" binding:"required"`
	GroupID string `json:"group_id,omitempty"`
}

// AIResponse is what the assistant handler returns to the frontend.
type AIResponse struct {
	Intent          string           `json:"intent"` // "chat", "schedule", "todo"
	ResponseText    string           `json:"response"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// ChatTurn is one exchange stored in the assistant context.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// AIContext is the per-user conversation state kept in Redis between chat
// requests.
type AIContext struct {
	GroupID string     `json:"groupId,omitempty"`
	History []ChatTurn `json:"history,omitempty"`
}
