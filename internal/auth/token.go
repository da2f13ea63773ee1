package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskman/internal/config"
	"taskman/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by both access and refresh tokens. Subject holds the user ID.
type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs access and refresh tokens with distinct secrets, so a
// leaked access token can never be replayed against the refresh endpoint.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     time.Duration(cfg.AccessTTLSecs) * time.Second,
		refreshTTL:    time.Duration(cfg.RefreshTTLSecs) * time.Second,
	}
}

func (s *TokenService) IssueAccessToken(user *model.User) (string, error) {
	return s.issue(user, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(user *model.User) (string, error) {
	return s.issue(user, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) issue(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *TokenService) ParseAccessToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, s.accessSecret)
}

func (s *TokenService) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, s.refreshSecret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
