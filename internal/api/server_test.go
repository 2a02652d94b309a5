package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/stream"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	schedmocks "github.com/vfg2006/lead-ads-dashboard/internal/scheduler/mocks"
	alertmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting/mocks"
	analysismocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis/mocks"
	authmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating/mocks"
	exportmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting/mocks"
	insightmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting/mocks"
	reportmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	auth     *authmocks.MockAuthenticator
	mappings *repomocks.MockCampaignMappingRepository
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		mappings: repomocks.NewMockCampaignMappingRepository(ctrl),
	}
	f.auth.EXPECT().Enabled().Return(true).AnyTimes()

	cfg := &config.Config{Server: config.Server{
		Host:           "127.0.0.1",
		Port:           "0",
		AllowedOrigins: []string{"http://localhost:3000"},
	}}

	srv, err := New(cfg,
		insightmocks.NewMockInsighter(ctrl),
		reportmocks.NewMockLeadReporter(ctrl),
		analysismocks.NewMockAnalyzer(ctrl),
		exportmocks.NewMockExporter(ctrl),
		alertmocks.NewMockAlerter(ctrl),
		f.auth,
		f.mappings,
		repomocks.NewMockCacheRepository(ctrl),
		schedmocks.NewMockManager(ctrl),
		stream.NewHub(cfg.Server.AllowedOrigins),
	)
	require.NoError(t, err)
	f.handler = srv.Handler()
	return f
}

func TestServer_RotasPublicas(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/ws/alerts")
}

func TestServer_ExigeToken(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/mappings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_TokenValido(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().ValidateToken("jwt").Return(&domain.Claims{SessionID: "s-1"}, nil)
	f.mappings.EXPECT().Load().Return(domain.NewCampaignConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/mappings", nil)
	req.Header.Set("Authorization", "Bearer jwt")
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"default_min_sell_rate":95`)
}
