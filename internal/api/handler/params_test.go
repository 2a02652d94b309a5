package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	previous := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = previous })
}

func TestParseFilters(t *testing.T) {
	fixNow(t, time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		query    string
		validate func(t *testing.T, filters *domain.InsightFilters, err error)
	}{
		{
			name:  "Sem parâmetros usa os últimos 7 dias",
			query: "",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, day("2024-06-03"), filters.Since)
				assert.Equal(t, day("2024-06-10"), filters.Until)
				assert.Equal(t, domain.DefaultGuardrailMinSpend, filters.GuardrailMinSpend)
				assert.Equal(t, domain.DefaultGuardrailMinLeads, filters.GuardrailMinLeads)
				assert.True(t, filters.Spend.IsZero())
			},
		},
		{
			name:  "Preset de 30 dias",
			query: "preset=30d",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, day("2024-05-11"), filters.Since)
			},
		},
		{
			name:  "Preset desconhecido",
			query: "preset=90d",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.ErrorContains(t, err, "preset desconhecido")
			},
		},
		{
			name:  "Listas, faixas e guardrail",
			query: "since=2024-06-01&until=2024-06-07&campaign_names=A,B&campaign_names=C&spend_min=10&cpl_max=40.5&min_spend=75&min_leads=3&breakdown=device",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"A", "B", "C"}, filters.CampaignNames)
				require.NotNil(t, filters.Spend.Min)
				assert.Equal(t, 10.0, *filters.Spend.Min)
				assert.Nil(t, filters.Spend.Max)
				require.NotNil(t, filters.CPL.Max)
				assert.Equal(t, 40.5, *filters.CPL.Max)
				assert.Equal(t, 75.0, filters.GuardrailMinSpend)
				assert.Equal(t, 3, filters.GuardrailMinLeads)
				assert.Equal(t, "device", filters.Breakdown)
			},
		},
		{
			name:  "Faixa não numérica",
			query: "leads_min=muitos",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.ErrorContains(t, err, "leads_min deve ser numérico")
			},
		},
		{
			name:  "Data final antes da inicial",
			query: "since=2024-06-07&until=2024-06-01",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/insights?"+tt.query, nil)
			filters, err := parseFilters(req)
			tt.validate(t, filters, err)
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{err: fmt.Errorf("%w: sem datas", insighting.ErrInvalidPeriod), code: apiErrors.ErrInvalidRequest},
		{err: reporting.ErrInvalidSource, code: apiErrors.ErrInvalidRequest},
		{err: insighting.ErrMetaNotConfigured, code: apiErrors.ErrIntegrationDisabled},
		{err: reporting.ErrNoAffiliate, code: apiErrors.ErrIntegrationDisabled},
		{err: exporting.ErrSheetsNotConfigured, code: apiErrors.ErrIntegrationDisabled},
		{err: fmt.Errorf("%w: x", scheduler.ErrUnknownJob), code: apiErrors.ErrNotFound},
		{err: fmt.Errorf("qualquer"), code: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, errorCode(tt.err))
		})
	}
}
