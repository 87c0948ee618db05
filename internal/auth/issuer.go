package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Taha-HB/sit-council-system/internal/config"
	"github.com/Taha-HB/sit-council-system/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what a bearer token decodes to. It identifies the caller; the
// role is always resolved against the user collection afterwards.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// CredentialIssuer is the seam between route logic and the token scheme.
// DemoIssuer keeps the original behavior; JWTIssuer is the real one.
type CredentialIssuer interface {
	Issue(user models.User) (string, error)
	Decode(token string) (Claims, error)
}

func FromConfig(cfg *config.Config) CredentialIssuer {
	if cfg.Auth.TokenIssuer == "jwt" {
		return NewJWTIssuer(cfg.Auth.JWTSecret)
	}
	return DemoIssuer{}
}

// DemoIssuer encodes claims as base64 JSON. Reversible, unsigned, no
// expiry: any well-formed token is accepted. Not a security boundary.
type DemoIssuer struct{}

func (DemoIssuer) Issue(user models.User) (string, error) {
	payload, err := json.Marshal(Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

func (DemoIssuer) Decode(token string) (Claims, error) {
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// JWTIssuer signs HS256 tokens with a 24h expiry.
type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (j *JWTIssuer) Issue(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWTIssuer) Decode(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Claims{UserID: int64(userID), Email: email}, nil
}
