package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/models"
)

// ListAnnouncements godoc
// @Summary List all announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Announcement
// @Router /api/announcements [get]
func (h *Handler) ListAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Announcements())
}

// CreateAnnouncement godoc
// @Summary Create an announcement
// @Description The author name is resolved from the caller at creation time and never updated afterwards
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body api.AnnouncementRequest true "Announcement details"
// @Success 200 {object} object{success=bool,announcement=models.Announcement}
// @Failure 400 {object} api.ErrorResponse
// @Router /api/announcements [post]
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var request struct {
		Title    string `json:"title" binding:"required"`
		Content  string `json:"content"`
		Priority string `json:"priority"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	identity := currentIdentity(c)
	announcement := h.store.AddAnnouncement(models.Announcement{
		Title:    request.Title,
		Content:  request.Content,
		Priority: request.Priority,
		Author:   identity.Name,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"announcement": announcement,
	})
}
