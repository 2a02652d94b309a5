package leadspedia

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
	"go.uber.org/mock/gomock"
)

func TestLeadspediaService_FetchLeadsCached(t *testing.T) {
	query := lpdomain.LeadQuery{
		Since:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		AffiliateID: "12",
	}

	tests := []struct {
		name     string
		setup    func(client *lpmocks.MockClient, cache *mocks.MockCacheRepository)
		validate func(t *testing.T, leads []lpdomain.LeadDisposition, err error)
	}{
		{
			name: "Cache válido - interpreta as linhas brutas",
			setup: func(client *lpmocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), time.Hour).
					Return(`[{"leadID":"1","sold":"Yes","price":"20"}]`, true, nil)
			},
			validate: func(t *testing.T, leads []lpdomain.LeadDisposition, err error) {
				require.NoError(t, err)
				require.Len(t, leads, 1)
				assert.Equal(t, lpdomain.StatusSold, leads[0].Status)
				assert.Equal(t, 20.0, leads[0].Revenue)
			},
		},
		{
			name: "Cache vazio - busca na API e grava as linhas",
			setup: func(client *lpmocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, nil)
				client.EXPECT().GetLeads(gomock.Any(), query).Return([]map[string]any{{"leadID": "2", "status": "Pending"}}, nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), `[{"leadID":"2","status":"Pending"}]`).Return(nil)
			},
			validate: func(t *testing.T, leads []lpdomain.LeadDisposition, err error) {
				require.NoError(t, err)
				require.Len(t, leads, 1)
				assert.Equal(t, lpdomain.StatusPending, leads[0].Status)
			},
		},
		{
			name: "Resposta vazia não é gravada",
			setup: func(client *lpmocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, nil)
				client.EXPECT().GetLeads(gomock.Any(), query).Return(nil, nil)
			},
			validate: func(t *testing.T, leads []lpdomain.LeadDisposition, err error) {
				require.NoError(t, err)
				assert.Empty(t, leads)
			},
		},
		{
			name: "Erro da API é propagado",
			setup: func(client *lpmocks.MockClient, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), time.Hour).Return("", false, nil)
				client.EXPECT().GetLeads(gomock.Any(), query).Return(nil, &lpdomain.APIError{Message: "Leadspedia API error: Invalid credentials"})
			},
			validate: func(t *testing.T, leads []lpdomain.LeadDisposition, err error) {
				var apiErr *lpdomain.APIError
				assert.True(t, errors.As(err, &apiErr))
				assert.Nil(t, leads)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := lpmocks.NewMockClient(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setup(client, cache)

			service := New(client, cache, time.Hour)
			leads, err := service.FetchLeadsCached(context.Background(), query)
			tt.validate(t, leads, err)
		})
	}
}

func TestLeadspediaService_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := lpmocks.NewMockClient(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := New(client, cache, time.Hour)
	ctx := context.Background()

	// Erro vira lista vazia e nada é gravado
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), contractsTTL).Return("", false, nil)
	client.EXPECT().GetContracts(gomock.Any()).Return(nil, errors.New("timeout"))
	contracts := service.Contracts(ctx)
	assert.NotNil(t, contracts)
	assert.Empty(t, contracts)

	// Anunciantes vêm do cache
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), advertisersTTL).Return(`[{"id":"1","name":"Buyer","status":"active"}]`, true, nil)
	advertisers := service.Advertisers(ctx)
	require.Len(t, advertisers, 1)
	assert.Equal(t, "Buyer", advertisers[0].Name)

	// Verticais buscadas na API são gravadas
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), verticalsTTL).Return("", false, nil)
	client.EXPECT().GetVerticals(gomock.Any()).Return([]lpdomain.Vertical{{ID: "7", Name: "Auto", Status: "active"}}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	assert.Len(t, service.Verticals(ctx), 1)

	// Afiliados não passam pelo cache
	client.EXPECT().GetAffiliates(gomock.Any()).Return(nil, errors.New("401"))
	assert.Empty(t, service.Affiliates(ctx))
}

func TestLeadspediaService_FetchSoldLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := lpmocks.NewMockClient(ctrl)
	service := New(client, nil, time.Hour)

	client.EXPECT().GetSoldLeads(gomock.Any(), gomock.Any()).Return([]map[string]any{{"leadID": "9", "status": "returned"}, {"leadID": "10", "sold": "Yes"}}, nil)

	leads, err := service.FetchSoldLeads(context.Background(), lpdomain.LeadQuery{})
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, lpdomain.StatusReturned, leads[0].Status)
	assert.Equal(t, lpdomain.StatusSold, leads[1].Status)
}
