package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims identify the caller of every protected route.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UID parses the user id carried by the token.
func (c *JWTClaims) UID() (uuid.UUID, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidToken
	}
	return uid, nil
}
