package models

import "time"

type Meeting struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date"` // YYYY-MM-DD
	Time       string     `json:"time,omitempty"`
	Location   string     `json:"location,omitempty"`
	Agenda     string     `json:"agenda,omitempty"`
	Attendees  []string   `json:"attendees,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Archived   bool       `json:"archived,omitempty"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`
}
