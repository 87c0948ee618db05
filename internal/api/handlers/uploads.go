package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Taha-HB/sit-council-system/internal/constants"
	"github.com/Taha-HB/sit-council-system/internal/models"
)

// Upload godoc
// @Summary Upload files
// @Description Up to 10 files, 10 MiB each. A file passes the filter when its extension or its declared type matches the allow-list; one rejected file fails the whole batch
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Files to upload"
// @Success 200 {object} object{success=bool,files=[]api.UploadedFileResponse}
// @Failure 413 {object} api.ErrorResponse
// @Failure 415 {object} api.ErrorResponse
// @Router /api/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}
	if len(files) > constants.MaxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many files"})
		return
	}

	// Validate the whole batch before writing anything to disk.
	for _, file := range files {
		if file.Size > constants.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		if !allowedUpload(file) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only document and image files are allowed"})
			return
		}
	}

	stored := make([]models.UploadedFile, 0, len(files))
	for _, file := range files {
		name := generateUploadName(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			return
		}
		stored = append(stored, models.UploadedFile{
			Name: file.Filename,
			URL:  "/uploads/" + name,
			Size: file.Size,
			Type: file.Header.Get("Content-Type"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"files":   stored,
	})
}

// allowedUpload passes a file when its extension OR its declared media
// type matches the allow-list. Either check alone suffices, so a spoofed
// extension or a spoofed type can bypass the other check; this mirrors the
// documented filter policy and must not be tightened to AND silently.
func allowedUpload(file *multipart.FileHeader) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if constants.AllowedUploadTypes[ext] {
		return true
	}

	declared := strings.ToLower(file.Header.Get("Content-Type"))
	for t := range constants.AllowedUploadTypes {
		if strings.Contains(declared, t) {
			return true
		}
	}
	return false
}

// generateUploadName builds a collision-resistant name: creation time in
// milliseconds, a random fragment, and the original extension.
func generateUploadName(original string) string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), fragment, strings.ToLower(filepath.Ext(original)))
}

// GeneratePDF godoc
// @Summary Generate a meeting PDF
// @Description Stub: returns a placeholder URL, no document is rendered. A real implementation delegates to a document-rendering service
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.GeneratePDFRequest true "Meeting and template"
// @Success 200 {object} object{success=bool,message=string,downloadUrl=string}
// @Router /api/generate-pdf [post]
func (h *Handler) GeneratePDF(c *gin.Context) {
	var request struct {
		MeetingID int64  `json:"meetingId" binding:"required"`
		Template  string `json:"template"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting id is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "PDF generated successfully",
		"downloadUrl": fmt.Sprintf("/api/pdf/%d.pdf", time.Now().UnixMilli()),
	})
}
