package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseToken(t *testing.T) {
	svc := NewAuthService("secret")
	token := signTestToken(t, "secret", jwt.MapClaims{
		"sub":     "user-1",
		"name":    "Ada",
		"email":   "ada@example.com",
		"picture": "http://pic",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if identity.UID != "user-1" || identity.DisplayName != "Ada" || identity.Email != "ada@example.com" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestParseTokenRejectsBadTokens(t *testing.T) {
	svc := NewAuthService("secret")

	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	wrongKey := signTestToken(t, "other-secret", jwt.MapClaims{"sub": "user-1"})
	if _, err := svc.ParseToken(wrongKey); err == nil {
		t.Error("expected error for wrong signing key")
	}

	noSubject := signTestToken(t, "secret", jwt.MapClaims{"name": "Ada"})
	if _, err := svc.ParseToken(noSubject); err == nil {
		t.Error("expected error for missing subject")
	}

	expired := signTestToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := svc.ParseToken(expired); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestMiddleware(t *testing.T) {
	svc := NewAuthService("secret")
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.UID != "user-1" {
			t.Errorf("identity not in context: %+v", identity)
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/community/friends", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token := signTestToken(t, "secret", jwt.MapClaims{"sub": "user-1"})
		req := httptest.NewRequest("GET", "/api/community/friends", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})
}

func TestRequireAuthSkipsPublicPaths(t *testing.T) {
	svc := NewAuthService("secret")
	handler := svc.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/community/friends", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("api status = %d, want 401", rec.Code)
	}
}
