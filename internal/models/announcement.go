package models

import "time"

type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Priority  string    `json:"priority,omitempty"`
	Author    string    `json:"author"` // resolved at creation time, never re-resolved
	CreatedAt time.Time `json:"createdAt"`
}
