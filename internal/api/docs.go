// internal/api/docs.go
package api

// These types are for Swagger documentation
type LoginRequest struct {
	Email    string `json:"email" example:"president@sit.edu"`
	Password string `json:"password" example:"password123"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" example:"ya29.a0AfH6..."`
}

type MeetingRequest struct {
	Title     string   `json:"title" example:"Budget Review"`
	Date      string   `json:"date" example:"2030-01-01"`
	Time      string   `json:"time" example:"14:00"`
	Location  string   `json:"location" example:"Senate Room"`
	Agenda    string   `json:"agenda" example:"Q1 budget"`
	Attendees []string `json:"attendees"`
}

type MinutesRequest struct {
	MeetingID   int64    `json:"meetingId" example:"1700000000000"`
	Content     string   `json:"content" example:"Opening remarks..."`
	Decisions   []string `json:"decisions"`
	ActionItems []string `json:"actionItems"`
}

type AnnouncementRequest struct {
	Title    string `json:"title" example:"General Assembly"`
	Content  string `json:"content" example:"Friday, 10am"`
	Priority string `json:"priority" example:"high"`
}

type GeneratePDFRequest struct {
	MeetingID int64  `json:"meetingId" example:"1700000000000"`
	Template  string `json:"template" example:"standard"`
}

type UploadedFileResponse struct {
	Name string `json:"name" example:"agenda.pdf"`
	URL  string `json:"url" example:"/uploads/1700000000000-1a2b3c4d.pdf"`
	Size int64  `json:"size" example:"20480"`
	Type string `json:"type" example:"application/pdf"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"SIT Council API is running"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}
