package models

import "time"

type Minutes struct {
	ID          int64     `json:"id"`
	MeetingID   int64     `json:"meetingId,omitempty"`
	Content     string    `json:"content"`
	Decisions   []string  `json:"decisions,omitempty"`
	ActionItems []string  `json:"actionItems,omitempty"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
