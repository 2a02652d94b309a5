package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	lpmocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/mocks"
	repomocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june7 = time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func lpConfig(affiliateID string) *config.Config {
	return &config.Config{Leadspedia: config.Leadspedia{
		APIKey:      "key",
		APISecret:   "secret",
		AffiliateID: affiliateID,
	}}
}

func soldLeads() []lpdomain.LeadDisposition {
	return []lpdomain.LeadDisposition{
		{LeadID: "1", Status: lpdomain.StatusSold, Revenue: 40, Payout: 10, BuyerName: strPtr("Acme"), Raw: map[string]any{"lp_s4": "Campanha A"}},
		{LeadID: "2", Status: lpdomain.StatusSold, Revenue: 20, Payout: 5, BuyerName: strPtr("Beta")},
		{LeadID: "3", Status: lpdomain.StatusReturned, Revenue: 0, BuyerName: strPtr("Acme")},
	}
}

func TestService_Stats(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		query    LeadsQuery
		setup    func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository)
		validate func(t *testing.T, overview *Overview, err error)
	}{
		{
			name:  "Leadspedia desabilitado",
			cfg:   &config.Config{},
			query: LeadsQuery{Since: june1, Until: june7},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {},
			validate: func(t *testing.T, overview *Overview, err error) {
				assert.ErrorIs(t, err, ErrLeadspediaDisabled)
			},
		},
		{
			name:  "Período invertido",
			cfg:   lpConfig("aff-1"),
			query: LeadsQuery{Since: june7, Until: june1},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {},
			validate: func(t *testing.T, overview *Overview, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
		{
			name:  "Sem affiliate configurado",
			cfg:   lpConfig(""),
			query: LeadsQuery{Since: june1, Until: june7},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {
				mappings.EXPECT().Load().Return(domain.NewCampaignConfig())
			},
			validate: func(t *testing.T, overview *Overview, err error) {
				assert.ErrorIs(t, err, ErrNoAffiliate)
			},
		},
		{
			name:  "Affiliate do mapeamento e leads vendidos",
			cfg:   lpConfig(""),
			query: LeadsQuery{Since: june1, Until: june7},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {
				mappings.EXPECT().Load().Return(&domain.CampaignConfig{AffiliateID: "aff-9"}).AnyTimes()
				lp.EXPECT().FetchSoldLeads(gomock.Any(), lpdomain.LeadQuery{Since: june1, Until: june7, AffiliateID: "aff-9"}).
					Return(soldLeads(), nil)
			},
			validate: func(t *testing.T, overview *Overview, err error) {
				require.NoError(t, err)
				assert.Equal(t, "aff-9", overview.AffiliateID)
				assert.Equal(t, 3, overview.Stats.TotalLeads)
				assert.Equal(t, 2, overview.Stats.SoldLeads)
				assert.Equal(t, 60.0, overview.Stats.TotalRevenue)
				assert.Equal(t, 2, overview.Buyers)
				assert.Equal(t, 1, overview.WithMetaData)
			},
		},
		{
			name:  "Todos os leads usam o cache",
			cfg:   lpConfig("aff-1"),
			query: LeadsQuery{Since: june1, Until: june7, Source: SourceAll, VerticalID: "v-2"},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {
				lp.EXPECT().FetchLeadsCached(gomock.Any(), lpdomain.LeadQuery{Since: june1, Until: june7, AffiliateID: "aff-1", VerticalID: "v-2"}).
					Return(nil, nil)
			},
			validate: func(t *testing.T, overview *Overview, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, overview.Stats.TotalLeads)
			},
		},
		{
			name:  "Origem desconhecida",
			cfg:   lpConfig("aff-1"),
			query: LeadsQuery{Since: june1, Until: june7, Source: "returns"},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {},
			validate: func(t *testing.T, overview *Overview, err error) {
				assert.ErrorIs(t, err, ErrInvalidSource)
			},
		},
		{
			name:  "Erro da API",
			cfg:   lpConfig("aff-1"),
			query: LeadsQuery{Since: june1, Until: june7},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *repomocks.MockCampaignMappingRepository) {
				lp.EXPECT().FetchSoldLeads(gomock.Any(), gomock.Any()).Return(nil, errors.New("Leadspedia API HTTP error 500"))
			},
			validate: func(t *testing.T, overview *Overview, err error) {
				assert.EqualError(t, err, "Leadspedia API HTTP error 500")
				assert.Nil(t, overview)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lp := lpmocks.NewMockLeadspediaIntegrator(ctrl)
			mappings := repomocks.NewMockCampaignMappingRepository(ctrl)
			tt.setup(lp, mappings)

			overview, err := NewService(tt.cfg, lp, mappings).Stats(context.Background(), tt.query)
			tt.validate(t, overview, err)
		})
	}
}

func TestService_BuyersLeadsLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	lp := lpmocks.NewMockLeadspediaIntegrator(ctrl)
	lp.EXPECT().FetchSoldLeads(gomock.Any(), gomock.Any()).Return(soldLeads(), nil).Times(3)

	service := NewService(lpConfig("aff-1"), lp, nil)
	query := LeadsQuery{Since: june1, Until: june7}

	buyers, err := service.Buyers(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, buyers, 2)
	assert.Equal(t, "Acme", buyers[0].BuyerName)
	assert.Equal(t, 1, buyers[0].LeadsSold)

	records, err := service.Leads(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].HasMetaMatch)
	assert.Equal(t, "Campanha A", records[0].MetaCampaign)

	log, err := service.Log(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, log, 3)
}

func TestService_ContractsAdvertisers(t *testing.T) {
	ctrl := gomock.NewController(t)
	lp := lpmocks.NewMockLeadspediaIntegrator(ctrl)
	lp.EXPECT().Contracts(gomock.Any()).Return([]lpdomain.Contract{
		{ID: "c1", Status: "Active"},
		{ID: "c2", Status: "paused"},
	}).Times(2)
	lp.EXPECT().Advertisers(gomock.Any()).Return([]lpdomain.Advertiser{{ID: "a1", Status: "inactive"}})
	lp.EXPECT().Verticals(gomock.Any()).Return([]lpdomain.Vertical{{ID: "v1", Name: "Auto"}})

	service := NewService(lpConfig(""), lp, nil)

	contracts, err := service.Contracts(context.Background(), "active")
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "c1", contracts[0].ID)

	contracts, err = service.Contracts(context.Background(), StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, contracts, 2)

	advertisers, err := service.Advertisers(context.Background(), "active")
	require.NoError(t, err)
	assert.Empty(t, advertisers)

	verticals, err := service.Verticals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Auto", verticals[0].Name)

	_, err = NewService(&config.Config{}, lp, nil).Verticals(context.Background())
	assert.ErrorIs(t, err, ErrLeadspediaDisabled)
}
