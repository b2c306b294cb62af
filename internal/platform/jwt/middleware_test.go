package jwtmw

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// TestMain puts Gin in test mode before running the tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestAuthRequired_MissingBearerToken verifies 401 when the bearer token is absent or malformed.
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
		{"bearer without token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			AuthRequired(svc)(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
			if _, ok := CurrentIdentity(c); ok {
				t.Error("identity must not be set")
			}
		})
	}
}

// TestAuthRequired_InvalidToken verifies 401 for tampered, expired or foreign tokens.
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"
	svc := NewTokenService(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", signClaims(t, "wrong-secret", signingHS256(), claimsFor(1, "USER", time.Hour))},
		{"expired token", signClaims(t, testSecret, signingHS256(), claimsFor(1, "USER", -time.Hour))},
		{"none algorithm", signNone(t, claimsFor(1, "ADMIN", time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			AuthRequired(svc)(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_ValidToken verifies the identity reaches both the gin context and the request context.
func TestAuthRequired_ValidToken(t *testing.T) {
	svc := NewTokenService("test-secret-key-for-valid", time.Hour)

	tests := []struct {
		name   string
		userID uint
		role   entity.Role
	}{
		{"user id 1", 1, entity.RoleUser},
		{"admin id 42", 42, entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(tt.userID, "test@example.com", tt.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+token)

			AuthRequired(svc)(c)

			if c.IsAborted() {
				t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
			}

			id, ok := CurrentIdentity(c)
			if !ok {
				t.Fatal("expected identity to be set in gin context")
			}
			if id.UserID != tt.userID || id.Role != tt.role {
				t.Errorf("unexpected identity: %+v", id)
			}

			ctxID, ok := IdentityFromContext(c.Request.Context())
			if !ok || ctxID != id {
				t.Errorf("expected request context identity %+v, got %+v (ok=%v)", id, ctxID, ok)
			}
		})
	}
}

// TestRequireAdmin verifies the role gate after authentication.
func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		identity     *Identity
		expectedCode int
		aborted      bool
	}{
		{"no identity", nil, http.StatusUnauthorized, true},
		{"user role", &Identity{UserID: 1, Role: entity.RoleUser}, http.StatusForbidden, true},
		{"admin role", &Identity{UserID: 2, Role: entity.RoleAdmin}, http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				c.Set(ContextIdentity, *tt.identity)
			}

			RequireAdmin()(c)

			if c.IsAborted() != tt.aborted {
				t.Fatalf("expected aborted=%v, got %v", tt.aborted, c.IsAborted())
			}
			if w.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, w.Code)
			}
		})
	}
}

// TestAuthChain_IdentityDoesNotLeakAcrossRequests verifies no identity is retained between requests.
func TestAuthChain_IdentityDoesNotLeakAcrossRequests(t *testing.T) {
	svc := NewTokenService("chain-secret", time.Hour)
	token, _ := svc.GenerateToken(5, "five@example.com", entity.RoleUser)

	r := gin.New()
	r.GET("/me", AuthRequired(svc), func(c *gin.Context) {
		id, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for the tokenless follow-up request, got %d", w.Code)
	}
}

// TestRequireIdentity verifies a missing identity maps to an Unauthenticated error.
func TestRequireIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, err := RequireIdentity(c); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated error, got %v", err)
	}

	c.Set(ContextIdentity, Identity{UserID: 4, Role: entity.RoleUser})
	id, err := RequireIdentity(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != 4 {
		t.Errorf("expected UserID 4, got %d", id.UserID)
	}
}
