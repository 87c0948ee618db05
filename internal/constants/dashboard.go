package constants

// Dashboard placeholders. There is no task entity and no attendance
// records yet, so these stay fixed instead of being computed.
const (
	CompletedTasksPlaceholder    = 0
	AverageAttendancePlaceholder = 85
)
