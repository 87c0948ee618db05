package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/models"
)

// ListMeetings godoc
// @Summary List all meetings
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Meeting
// @Failure 401 {object} api.ErrorResponse
// @Router /api/meetings [get]
func (h *Handler) ListMeetings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Meetings())
}

// CreateMeeting godoc
// @Summary Create a meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meeting body api.MeetingRequest true "Meeting details"
// @Success 200 {object} object{success=bool,meeting=models.Meeting}
// @Failure 400 {object} api.ErrorResponse
// @Router /api/meetings [post]
func (h *Handler) CreateMeeting(c *gin.Context) {
	var request struct {
		Title     string   `json:"title" binding:"required"`
		Date      string   `json:"date" binding:"required"`
		Time      string   `json:"time"`
		Location  string   `json:"location"`
		Agenda    string   `json:"agenda"`
		Attendees []string `json:"attendees"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and date are required"})
		return
	}

	meeting := h.store.AddMeeting(models.Meeting{
		Title:     request.Title,
		Date:      request.Date,
		Time:      request.Time,
		Location:  request.Location,
		Agenda:    request.Agenda,
		Attendees: request.Attendees,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"meeting": meeting,
	})
}

// ArchiveMeeting godoc
// @Summary Archive a meeting
// @Description One-way transition; re-archiving restamps the archive time
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Success 200 {object} object{success=bool,meeting=models.Meeting}
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} object{success=bool,message=string}
// @Router /api/meetings/{id}/archive [put]
func (h *Handler) ArchiveMeeting(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meeting not found"})
		return
	}

	meeting, found := h.store.ArchiveMeeting(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"meeting": meeting,
	})
}
