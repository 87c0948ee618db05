package models

type DashboardStats struct {
	TotalMeetings     int `json:"totalMeetings"`
	UpcomingMeetings  int `json:"upcomingMeetings"`
	CompletedTasks    int `json:"completedTasks"`
	MemberCount       int `json:"memberCount"`
	AverageAttendance int `json:"averageAttendance"`
}

// RankedUser scores are randomly generated until a real scoring pipeline
// exists; only the descending order by performance is meaningful.
type RankedUser struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Role             Role   `json:"role"`
	Avatar           string `json:"avatar"`
	Performance      int    `json:"performance"`
	TasksCompleted   int    `json:"tasksCompleted"`
	MeetingsAttended int    `json:"meetingsAttended"`
}
