package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/espressolab/storefront-backend/pkg/auth"
	"github.com/espressolab/storefront-backend/pkg/config"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCallerAuthDisabledPassesThrough(t *testing.T) {
	handler := CallerAuth(config.AuthConfig{}, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCallerAuthRejectsMissingToken(t *testing.T) {
	handler := CallerAuth(config.AuthConfig{JWTSecret: "secret"}, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCallerAuthRejectsInvalidToken(t *testing.T) {
	handler := CallerAuth(config.AuthConfig{JWTSecret: "secret"}, logger.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCallerAuthAllowsValidToken(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret"}
	token, err := auth.MintCallerToken(cfg, time.Now(), "service_role", "db-trigger", time.Hour)
	require.NoError(t, err)

	var role, subject string
	handler := CallerAuth(cfg, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role = CallerRoleFromContext(r.Context())
		subject = CallerSubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "service_role", role)
	assert.Equal(t, "db-trigger", subject)
}
