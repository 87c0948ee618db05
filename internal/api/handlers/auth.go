package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/models"
)

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password, returns the user and a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body api.LoginRequest true "Login credentials"
// @Success 200 {object} object{success=bool,user=object,token=string}
// @Failure 401 {object} object{success=bool,message=string}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, found := h.store.UserByEmail(credentials.Email)
	if !found || !h.verifier.Verify(user.Password, credentials.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Password carries a json:"-" tag, so the secret never serializes.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// GoogleLogin godoc
// @Summary Login with a Google token
// @Description Stub integration: accepts any provider token and returns a fixed demo identity
// @Tags auth
// @Accept json
// @Produce json
// @Param token body api.GoogleLoginRequest true "Provider token"
// @Success 200 {object} object{success=bool,user=object,token=string}
// @Router /api/auth/google [post]
func (h *Handler) GoogleLogin(c *gin.Context) {
	var request struct {
		Token string `json:"token"`
	}
	// Any input is accepted; no provider verification happens here.
	_ = c.ShouldBindJSON(&request)

	user := models.User{
		ID:        1000,
		FirstName: "Google",
		LastName:  "User",
		Email:     "google@example.com",
		Role:      models.RoleMember,
		Avatar:    "GU",
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   fmt.Sprintf("google-token-%d", time.Now().UnixMilli()),
	})
}
