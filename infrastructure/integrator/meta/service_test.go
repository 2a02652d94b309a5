package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_FetchInsightsCached(t *testing.T) {
	query := metadomain.InsightsQuery{
		AdAccountID: "act_1",
		Since:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:       time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		setup    func(client *metamocks.MockClient, cache *mocks.MockCacheRepository)
		validate func(t *testing.T, rows []domain.InsightRow, err error)
	}{
		{
			name: "Cache válido - não chama o Graph API",
			setup: func(client *metamocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), time.Hour).
					Return(`[{"campaign_id":"c1","ad_id":"a1","spend":12.5,"leads":1}]`, true, nil)
			},
			validate: func(t *testing.T, rows []domain.InsightRow, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, 12.5, rows[0].Spend)
			},
		},
		{
			name: "Cache vazio - converte e grava mesmo sem linhas",
			setup: func(client *metamocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, nil)
				client.EXPECT().GetInsights(gomock.Any(), query).Return([]metadomain.Insight{}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), "[]").Return(nil)
			},
			validate: func(t *testing.T, rows []domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Empty(t, rows)
			},
		},
		{
			name: "Falha no cache não impede a consulta",
			setup: func(client *metamocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, errors.New("database is locked"))
				client.EXPECT().GetInsights(gomock.Any(), query).Return([]metadomain.Insight{
					{CampaignID: "c1", AdID: "a1", Spend: "30", Actions: []metadomain.Action{{ActionType: "lead", Value: "3"}}},
				}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
			},
			validate: func(t *testing.T, rows []domain.InsightRow, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, 3, rows[0].Leads)
				assert.Equal(t, 10.0, *rows[0].CPL)
			},
		},
		{
			name: "Erro do Graph API é propagado",
			setup: func(client *metamocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, nil)
				client.EXPECT().GetInsights(gomock.Any(), query).Return(nil, &metadomain.APIError{StatusCode: 400, Details: &metadomain.ErrorDetails{Message: "Invalid OAuth access token"}})
			},
			validate: func(t *testing.T, rows []domain.InsightRow, err error) {
				var apiErr *metadomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Nil(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := metamocks.NewMockClient(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setup(client, cache)

			service := New(&config.Config{}, client, cache)
			rows, err := service.FetchInsightsCached(context.Background(), query, []string{"lead"}, time.Hour)
			tt.validate(t, rows, err)
		})
	}
}

func TestMetaIntegrator_ListAdsets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := metamocks.NewMockClient(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Minute).Return("", false, nil)
	client.EXPECT().ListAdsets(gomock.Any(), "act_1", []string{"c1"}).Return([]metadomain.Object{{ID: "s1", Name: "Conjunto"}}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	service := New(&config.Config{}, client, cache)
	adsets, err := service.ListAdsets(context.Background(), "act_1", []string{"c1"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []metadomain.Object{{ID: "s1", Name: "Conjunto"}}, adsets)
}

func TestMetaIntegrator_Configured(t *testing.T) {
	assert.False(t, New(&config.Config{}, nil, nil).Configured())
	assert.False(t, New(&config.Config{Meta: config.Meta{AccessToken: "  ", AdAccountID: "act_1"}}, nil, nil).Configured())
	assert.True(t, New(&config.Config{Meta: config.Meta{AccessToken: "tok", AdAccountID: "act_1"}}, nil, nil).Configured())
}
