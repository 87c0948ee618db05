package models

// UploadedFile describes a stored upload in the response. The blob itself
// lives on disk under its generated name; nothing is tracked afterwards.
type UploadedFile struct {
	Name string `json:"name"` // original filename as submitted
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}
