package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/models"
)

// CreateMinutes godoc
// @Summary Create meeting minutes
// @Description Secretary only; minutes are immutable once created
// @Tags minutes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param minutes body api.MinutesRequest true "Minutes details"
// @Success 200 {object} object{success=bool,minutes=models.Minutes}
// @Failure 403 {object} api.ErrorResponse
// @Router /api/minutes [post]
func (h *Handler) CreateMinutes(c *gin.Context) {
	var request struct {
		MeetingID   int64    `json:"meetingId"`
		Content     string   `json:"content" binding:"required"`
		Decisions   []string `json:"decisions"`
		ActionItems []string `json:"actionItems"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	identity := currentIdentity(c)
	minutes := h.store.AddMinutes(models.Minutes{
		MeetingID:   request.MeetingID,
		Content:     request.Content,
		Decisions:   request.Decisions,
		ActionItems: request.ActionItems,
		CreatedBy:   identity.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"minutes": minutes,
	})
}

// ListMinutes godoc
// @Summary List all minutes
// @Tags minutes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Minutes
// @Router /api/minutes [get]
func (h *Handler) ListMinutes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Minutes())
}
