package entities

import "time"

// UserReminders stores per-user study reminder preferences.
type UserReminders struct {
	UserID        int64
	ChatID        int64
	Enabled       bool
	IntervalHours int // hours between reminders
	LastSentAt    *time.Time
}

// NewUserReminders creates reminder settings with default values.
func NewUserReminders(userID, chatID int64) *UserReminders {
	return &UserReminders{
		UserID:        userID,
		ChatID:        chatID,
		Enabled:       false,
		IntervalHours: 3,
	}
}

// Due reports whether a reminder should be sent at the given time.
func (r *UserReminders) Due(now time.Time) bool {
	if !r.Enabled {
		return false
	}
	if r.LastSentAt == nil {
		return true
	}
	return now.Sub(*r.LastSentAt) >= time.Duration(r.IntervalHours)*time.Hour
}
