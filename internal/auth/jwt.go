// internal/auth/jwt.go
package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salon-manager/internal/config"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Session identifies who is calling: the shared admin login or a staff member.
type Session struct {
	Role    string
	StaffID string
}

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
	}
}

func (s *TokenService) GenerateToken(sess Session) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.MapClaims{
		"role": sess.Role,
		"exp":  expTime.Unix(),
	}
	if sess.StaffID != "" {
		claims["staff_id"] = sess.StaffID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err == nil {
		slog.Debug("JWT generated", "role", sess.Role, "expires_at", expTime.Format(time.RFC3339))
	}
	return tokenStr, err
}

func (s *TokenService) ParseToken(tokenStr string) (Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return Session{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Session{}, errors.New("invalid token claims")
	}
	role, _ := claims["role"].(string)
	if role != RoleAdmin && role != RoleStaff {
		return Session{}, errors.New("invalid role claim")
	}
	staffID, _ := claims["staff_id"].(string)
	return Session{Role: role, StaffID: staffID}, nil
}
