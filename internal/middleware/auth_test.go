// internal/middleware/auth_test.go
package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vocab_forge/internal/config"
	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	users map[uuid.UUID]*model.User
}

func (r *stubResolver) ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if user, ok := r.users[userID]; ok {
		return user, nil
	}
	return nil, model.ErrNotFound
}

func signTestToken(t *testing.T, secret, purpose string, sub string, ttl time.Duration) string {
	t.Helper()
	claims := &model.TokenClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"

	user := &model.User{UserID: uuid.New(), Email: "u@example.com"}
	blocked := &model.User{UserID: uuid.New(), Email: "b@example.com", IsBlocked: true}
	resolver := &stubResolver{users: map[uuid.UUID]*model.User{
		user.UserID:    user,
		blocked.UserID: blocked,
	}}

	var seenUser *model.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		seenUser, err = middleware.GetUserFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireAuth(cfg, resolver)(next)

	serve := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token passes and resolves user", func(t *testing.T) {
		token := signTestToken(t, "test-secret", model.TokenPurposeAccess, user.UserID.String(), time.Hour)
		rec := serve("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seenUser)
		assert.Equal(t, user.UserID, seenUser.UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("Token abc").Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, "test-secret", model.TokenPurposeAccess, user.UserID.String(), -time.Minute)
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+token).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signTestToken(t, "other-secret", model.TokenPurposeAccess, user.UserID.String(), time.Hour)
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+token).Code)
	})

	t.Run("setup token is not a session", func(t *testing.T) {
		token := signTestToken(t, "test-secret", model.TokenPurposeGoogleSetup, user.UserID.String(), time.Hour)
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+token).Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		token := signTestToken(t, "test-secret", model.TokenPurposeAccess, uuid.NewString(), time.Hour)
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+token).Code)
	})

	t.Run("blocked account", func(t *testing.T) {
		token := signTestToken(t, "test-secret", model.TokenPurposeAccess, blocked.UserID.String(), time.Hour)
		assert.Equal(t, http.StatusForbidden, serve("Bearer "+token).Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireAdmin(next)

	serve := func(user *model.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if user != nil {
			req = req.WithContext(context.WithValue(req.Context(), model.UserContextKey, user))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, serve(&model.User{UserID: uuid.New(), IsAdmin: true}).Code)
	assert.Equal(t, http.StatusForbidden, serve(&model.User{UserID: uuid.New()}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(nil).Code)
}
