package models

// ReminderPayload is the asynq task payload for a scheduled event reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	EventID    string `json:"eventId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
