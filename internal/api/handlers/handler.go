package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Taha-HB/sit-council-system/internal/auth"
	"github.com/Taha-HB/sit-council-system/internal/models"
	"github.com/Taha-HB/sit-council-system/internal/store"
)

type Handler struct {
	store     *store.Store
	issuer    auth.CredentialIssuer
	verifier  auth.CredentialVerifier
	uploadDir string
}

func NewHandler(s *store.Store, issuer auth.CredentialIssuer, verifier auth.CredentialVerifier, uploadDir string) *Handler {
	return &Handler{
		store:     s,
		issuer:    issuer,
		verifier:  verifier,
		uploadDir: uploadDir,
	}
}

// currentIdentity reads the identity placed on the context by the auth
// middleware.
func currentIdentity(c *gin.Context) models.Identity {
	if value, exists := c.Get("identity"); exists {
		if identity, ok := value.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{Role: models.RoleMember}
}
