package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"simplexify_server/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityContextKey contextKey = "identity"

// AuthService validates bearer tokens and exposes the caller's identity.
// Tokens are HMAC-signed JWTs carrying the user id in the subject claim.
type AuthService struct {
	Secret []byte
}

// NewAuthService initializes AuthService
func NewAuthService(secret string) *AuthService {
	return &AuthService{Secret: []byte(secret)}
}

type identityClaims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken validates a token string and returns the identity it carries.
func (s *AuthService) ParseToken(tokenString string) (*models.UserIdentity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token: missing subject")
	}

	return &models.UserIdentity{
		UID:         claims.Subject,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		Email:       claims.Email,
	}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// identity on the request context for handlers to read.
func (s *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}

		identity, err := s.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth enforces bearer tokens on /api paths only, leaving the
// welcome, health and socket endpoints open.
func (s *AuthService) RequireAuth(next http.Handler) http.Handler {
	protected := s.Middleware(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			protected.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(ctx context.Context) (*models.UserIdentity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*models.UserIdentity)
	return identity, ok
}
