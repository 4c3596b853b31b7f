package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espressolab/storefront-backend/internal/notifications"
	pkgAuth "github.com/espressolab/storefront-backend/pkg/auth"
	"github.com/espressolab/storefront-backend/pkg/config"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubOrderNotifier struct{}

func (stubOrderNotifier) Notify(ctx context.Context, req notifications.OrderRequest) (string, error) {
	return "ORD-7", nil
}

type stubQCNotifier struct{}

func (stubQCNotifier) Notify(ctx context.Context, req notifications.QCRequest) (string, error) {
	return req.ReportID.String(), nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", CORSAllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestRouter(cfg *config.Config, registry *prometheus.Registry) http.Handler {
	return NewRouter(cfg, logger.Nop(), stubPinger{}, nil, registry, stubOrderNotifier{}, stubQCNotifier{})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), path)
	}
}

func TestRouterNotificationEndpoints(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/functions/v1/send-order-notification",
		strings.NewReader(`{"order_id":"`+uuid.NewString()+`","type":"order_placed"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"order_number":"ORD-7"}`, rec.Body.String())

	reportID := uuid.NewString()
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/functions/v1/send-qc-notification",
		strings.NewReader(`{"report_id":"`+reportID+`"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"report_id":"`+reportID+`"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/functions/v1/send-qc-notification", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterRequiresTokenWhenSecretConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.AuthConfig{JWTSecret: "secret"}
	router := newTestRouter(cfg, nil)
	body := `{"report_id":"` + uuid.NewString() + `"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/functions/v1/send-qc-notification", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := pkgAuth.MintCallerToken(cfg.Auth, time.Now(), "service_role", "trigger", time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/send-qc-notification", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "health stays public")
}

func TestRouterMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewNotificationMetrics(registry)
	m.ObserveEmail("customer", nil)
	router := newTestRouter(testConfig(), registry)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "notification_emails_total")
}
