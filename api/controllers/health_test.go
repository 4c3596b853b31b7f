package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/espressolab/storefront-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func healthConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(healthConfig())(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-EspressoLab-Env"))
	assert.JSONEq(t, `{"data":{"status":"live"}}`, rec.Body.String())
}

func TestHealthReady(t *testing.T) {
	cases := []struct {
		name   string
		db     Pinger
		redis  Pinger
		status int
	}{
		{name: "db only", db: stubPinger{}, status: http.StatusOK},
		{name: "db and redis", db: stubPinger{}, redis: stubPinger{}, status: http.StatusOK},
		{name: "db down", db: stubPinger{err: errors.New("conn refused")}, status: http.StatusServiceUnavailable},
		{name: "redis down", db: stubPinger{}, redis: stubPinger{err: errors.New("timeout")}, status: http.StatusServiceUnavailable},
		{name: "no db", status: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthReady(healthConfig(), nil, tc.db, tc.redis)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
