package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeMessageSubmitted    ActivityType = "message_submitted"
	TypeSummaryProduced     ActivityType = "summary_produced"
	TypeSummaryFailed       ActivityType = "summary_failed"
	TypeTranslationProduced ActivityType = "translation_produced"
	TypeTranslationFailed   ActivityType = "translation_failed"
	TypeLanguageSelected    ActivityType = "language_selected"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	SessionID    string       `json:"session_id"`
	MessageID    *int64       `json:"message_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
