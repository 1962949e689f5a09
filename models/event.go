package models

import "time"

// Event is a calendar entry owned by a single user. Start/End are minutes
// from midnight (e.g., 540 for 9:00 AM); both are optional on the wire. An
// all-day event ignores them. EndDate, when set, marks a multi-day event
// covering every date from Date through EndDate inclusive.
type Event struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"user_id"`
	GroupID         string    `bson:"groupId,omitempty" json:"group_id,omitempty"`
	Title           string    `bson:"title" json:"title"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	Date            string    `bson:"date" json:"date"` // "2006-01-02"
	EndDate         string    `bson:"endDate,omitempty" json:"end_date,omitempty"`
	Start           *int      `bson:"start,omitempty" json:"start,omitempty"`
	End             *int      `bson:"end,omitempty" json:"end,omitempty"`
	AllDay          bool      `bson:"allDay" json:"all_day"`
	ReminderMinutes int       `bson:"reminderMinutes,omitempty" json:"reminder_minutes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updated_at"`
}

// EventResult is the write-path response: the persisted event plus any
// overlapping intervals already on the owner's calendar. Conflicts are
// advisory; the event is saved regardless.
type EventResult struct {
	Event     Event          `json:"event"`
	Conflicts []BusyInterval `json:"conflicts,omitempty"`
}

// EventInput is the create/update payload for calendar events.
type EventInput struct {
	Title           string `json:"title" binding:"required"`
	Notes           string `json:"notes"`
	Location        string `json:"location"`
	Date            string `json:"date" binding:"required"`
	EndDate         string `json:"end_date"`
	Start           *int   `json:"start"`
	End             *int   `json:"end"`
	AllDay          bool   `json:"all_day"`
	GroupID         string `json:"group_id"`
	ReminderMinutes int    `json:"reminder_minutes"`
}
