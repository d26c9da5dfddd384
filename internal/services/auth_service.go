package services

import (
	"time"

	esports_errors "esports-api/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService verifies the HS256 tokens that guard admin endpoints.
type AuthService struct {
	jwtSecret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{jwtSecret: []byte(secret)}
}

// IssueToken signs a token for subject with role, valid for ttl.
func (s *AuthService) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, esports_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, esports_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, esports_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, esports_errors.ErrUnauthorized
	}

	return *claims, nil
}

// ParseAdminToken accepts only tokens carrying the admin role.
func (s *AuthService) ParseAdminToken(tokenString string) (AccessClaims, error) {
	claims, err := s.ParseAccessToken(tokenString)
	if err != nil {
		return AccessClaims{}, err
	}
	if claims.Role != RoleAdmin {
		return AccessClaims{}, esports_errors.ErrUnauthorized
	}
	return claims, nil
}
