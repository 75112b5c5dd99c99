// Package auth issues and verifies the JWT pairs used by the API.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsboard/internal/domain/entity"
)

const (
	accessTokenTTL  = 3 * time.Minute
	refreshTokenTTL = 15 * time.Minute

	minSecretLength = 12
)

// weakSecrets are values JWT_SECRET must never be set to. Checked as
// lowercase prefixes at startup.
var weakSecrets = []string{
	"secret",
	"password",
	"changeme",
	"default",
	"jwt_secret",
	"123456",
	"test",
}

// Claims is the identity payload carried by both tokens of a pair.
type Claims struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login returns. The access token is
// short-lived; the refresh token outlives it by a few window lengths.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService signs and verifies HS256 tokens with a shared secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// ValidateSecret checks the JWT_SECRET environment variable at startup.
// An empty, short, or well-known value is a configuration error the
// process must refuse to start with.
func ValidateSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("jwt secret validation failed: JWT_SECRET must not be empty")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret validation failed: JWT_SECRET must be at least %d characters (current length: %d)", minSecretLength, len(secret))
	}
	lowered := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.HasPrefix(lowered, weak) {
			return nil, errors.New("jwt secret validation failed: JWT_SECRET matches a well-known weak value")
		}
	}
	return []byte(secret), nil
}

// IssuePair signs an access/refresh token pair for the given account.
func (s *TokenService) IssuePair(u *entity.User) (*TokenPair, error) {
	access, err := s.sign(u, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(u, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) sign(u *entity.User, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		Email:     u.Email,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a signed token and returns its identity claims. Any
// failure, including an expired token or a token signed with another
// algorithm, is reported as a single error.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
