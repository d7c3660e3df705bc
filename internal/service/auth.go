package service

import (
	"fmt"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "fstech-agency"

// Authenticator exchanges the agency API key for short-lived JWTs and
// verifies them on mutating routes. The API key is only ever held as a
// bcrypt hash.
type Authenticator struct {
	apiKeyHash []byte
	jwtSecret  []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

// NewAuthenticator builds an authenticator from the configured bcrypt
// hash and signing secret.
func NewAuthenticator(apiKeyHash, jwtSecret string, tokenTTL time.Duration) *Authenticator {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Authenticator{
		apiKeyHash: []byte(apiKeyHash),
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// HashAPIKey produces the bcrypt hash to store in configuration.
func HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IssueToken validates the API key against the stored hash and returns
// a signed JWT.
func (a *Authenticator) IssueToken(apiKey string) (string, error) {
	if len(a.apiKeyHash) == 0 {
		return "", &domain.ErrUnauthorized{Message: "API key authentication is not configured"}
	}
	if err := bcrypt.CompareHashAndPassword(a.apiKeyHash, []byte(apiKey)); err != nil {
		return "", &domain.ErrUnauthorized{Message: "invalid API key"}
	}

	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "api-client",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature, issuer and expiry of a bearer token.
func (a *Authenticator) VerifyToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return a.jwtSecret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return a.now() }),
	)
	if err != nil || !token.Valid {
		return &domain.ErrUnauthorized{Message: "invalid or expired token"}
	}
	return nil
}
