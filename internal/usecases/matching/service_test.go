package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	lpmocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/mocks"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_FetchAndMatchCached(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	metaRows := []domain.InsightRow{
		{CampaignID: "c1", AdID: "a1", Spend: 20, Leads: 2},
	}

	saved := domain.NewCampaignConfig()
	saved.AffiliateID = "77"
	saved.Mappings = append(saved.Mappings, domain.CampaignVerticalMapping{MetaCampaignID: "c1", VerticalID: "v1"})

	tests := []struct {
		name     string
		cfg      *config.Config
		metaRows []domain.InsightRow
		setup    func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository)
		validate func(t *testing.T, result *domain.MatchResult, err error)
	}{
		{
			name:     "Cache válido - não consulta o Leadspedia",
			cfg:      &config.Config{},
			metaRows: metaRows,
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository) {
				mappings.EXPECT().Load().Return(saved.Clone()).AnyTimes()
				mappings.EXPECT().Hash().Return("hash")
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(`{"matched_data":[{"campaign_id":"c1","lp_sold_leads":2}],"unmatched_meta_campaigns":[],"meta_lead_count":2,"lp_lead_count":2,"match_rate":100}`, true, nil)
			},
			validate: func(t *testing.T, result *domain.MatchResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.MatchedData, 1)
				assert.Equal(t, 2, result.MatchedData[0].LPSoldLeads)
				assert.Equal(t, 100.0, result.MatchRate)
			},
		},
		{
			name:     "Cache vazio - combina getAll e getSold e grava o resultado",
			cfg:      &config.Config{},
			metaRows: metaRows,
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository) {
				mappings.EXPECT().Load().Return(saved.Clone()).AnyTimes()
				mappings.EXPECT().Hash().Return("hash")
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil)

				query := lpdomain.LeadQuery{Since: since, Until: until, AffiliateID: "77"}
				lp.EXPECT().
					FetchLeads(gomock.Any(), query, lpdomain.SourceDefault).
					Return([]lpdomain.LeadDisposition{lead("1", lpdomain.StatusSold, 10), lead("2", lpdomain.StatusPending, 0)}, nil)
				lp.EXPECT().
					FetchSoldLeads(gomock.Any(), query).
					Return([]lpdomain.LeadDisposition{lead("1", lpdomain.StatusSold, 10), lead("3", lpdomain.StatusSold, 20)}, nil)

				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.MatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, result.LPLeadCount)
				require.Len(t, result.MatchedData, 1)
				assert.Equal(t, 2, result.MatchedData[0].LPSoldLeads)
				assert.Equal(t, 1, result.MatchedData[0].LPPendingLeads)
				assert.Equal(t, 30.0, result.MatchedData[0].Revenue)
				assert.Empty(t, result.UnmatchedMetaCampaigns)
			},
		},
		{
			name:     "Falha no getAll - usa apenas os vendidos",
			cfg:      &config.Config{},
			metaRows: metaRows,
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository) {
				mappings.EXPECT().Load().Return(saved.Clone()).AnyTimes()
				mappings.EXPECT().Hash().Return("hash")
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil)
				lp.EXPECT().
					FetchLeads(gomock.Any(), gomock.Any(), lpdomain.SourceDefault).
					Return(nil, errors.New("timeout"))
				lp.EXPECT().
					FetchSoldLeads(gomock.Any(), gomock.Any()).
					Return([]lpdomain.LeadDisposition{lead("3", lpdomain.StatusSold, 20)}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.MatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.LPLeadCount)
				assert.Equal(t, 20.0, result.MatchedData[0].Revenue)
			},
		},
		{
			name: "Sem afiliado - consulta o mapa legado do ambiente",
			cfg: &config.Config{Leadspedia: config.Leadspedia{
				CampaignMap: map[string]config.CampaignMapping{
					"c1": {MetaCampaignID: "c1", AffiliateID: "9", Vertical: "auto"},
				},
			}},
			metaRows: metaRows,
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository) {
				mappings.EXPECT().Load().Return(domain.NewCampaignConfig()).AnyTimes()
				mappings.EXPECT().Hash().Return("hash")
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil)
				lp.EXPECT().
					FetchLeads(gomock.Any(), lpdomain.LeadQuery{Since: since, Until: until, AffiliateID: "9", VerticalID: "auto"}, lpdomain.SourceDefault).
					Return([]lpdomain.LeadDisposition{lead("5", lpdomain.StatusSold, 40)}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.MatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.LPLeadCount)
				assert.Empty(t, result.UnmatchedMetaCampaigns)
			},
		},
		{
			name: "Sem linhas do Meta - não grava cache",
			cfg:  &config.Config{},
			setup: func(lp *lpmocks.MockLeadspediaIntegrator, mappings *mocks.MockCampaignMappingRepository, cache *mocks.MockCacheRepository) {
				mappings.EXPECT().Load().Return(domain.NewCampaignConfig()).AnyTimes()
				mappings.EXPECT().Hash().Return("hash")
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil)
			},
			validate: func(t *testing.T, result *domain.MatchResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.MatchedData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLeadspedia := lpmocks.NewMockLeadspediaIntegrator(ctrl)
			mockMappings := mocks.NewMockCampaignMappingRepository(ctrl)
			mockCache := mocks.NewMockCacheRepository(ctrl)
			tt.setup(mockLeadspedia, mockMappings, mockCache)

			service := NewService(tt.cfg, mockLeadspedia, mockMappings, mockCache)
			result, err := service.FetchAndMatchCached(context.Background(), since, until, tt.metaRows)
			tt.validate(t, result, err)
		})
	}
}

func TestService_AffiliateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMappings := mocks.NewMockCampaignMappingRepository(ctrl)
	cfg := &config.Config{Leadspedia: config.Leadspedia{AffiliateID: "env"}}
	service := NewService(cfg, nil, mockMappings, nil)

	saved := domain.NewCampaignConfig()
	saved.AffiliateID = "salvo"
	mockMappings.EXPECT().Load().Return(saved)
	assert.Equal(t, "salvo", service.AffiliateID())

	mockMappings.EXPECT().Load().Return(domain.NewCampaignConfig())
	assert.Equal(t, "env", service.AffiliateID())
}
