package handlers

import (
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/constants"
	"github.com/Taha-HB/sit-council-system/internal/models"
)

// DashboardStats godoc
// @Summary Dashboard statistics
// @Description Computed by scanning the meeting collection on each request
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *Handler) DashboardStats(c *gin.Context) {
	meetings := h.store.Meetings()

	now := time.Now()
	upcoming := 0
	for _, m := range meetings {
		if date, ok := parseMeetingDate(m.Date); ok && date.After(now) {
			upcoming++
		}
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		TotalMeetings:     len(meetings),
		UpcomingMeetings:  upcoming,
		CompletedTasks:    constants.CompletedTasksPlaceholder,
		MemberCount:       h.store.MemberCount(),
		AverageAttendance: constants.AverageAttendancePlaceholder,
	})
}

// parseMeetingDate handles the date representation used at meeting
// creation. Unparsable dates count as not upcoming.
func parseMeetingDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

// Leaderboard godoc
// @Summary Council leaderboard
// @Description Scores are randomly generated stand-ins for a real scoring pipeline; only the descending order is meaningful
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RankedUser
// @Router /api/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	users := h.store.Users()

	board := make([]models.RankedUser, 0, len(users))
	for _, u := range users {
		board = append(board, models.RankedUser{
			ID:               u.ID,
			Name:             u.FullName(),
			Role:             u.Role,
			Avatar:           u.Avatar,
			Performance:      rand.Intn(100),
			TasksCompleted:   rand.Intn(50),
			MeetingsAttended: rand.Intn(30),
		})
	}

	sort.Slice(board, func(i, j int) bool {
		return board[i].Performance > board[j].Performance
	})

	c.JSON(http.StatusOK, board)
}
