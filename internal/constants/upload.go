package constants

const (
	// Upload limits (per request / per file)
	MaxUploadFiles = 10
	MaxUploadBytes = 10 << 20 // 10 MiB
)

// Allowed upload types. A file passes when its extension OR its declared
// media type matches; either check alone is enough.
var AllowedUploadTypes = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"txt":  true,
}
