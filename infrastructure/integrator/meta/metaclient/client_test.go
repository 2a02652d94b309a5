package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var fastRetry = utils.RetryPolicy{Attempts: 3, Initial: time.Millisecond, Max: 5 * time.Millisecond}

func newTestClient(t *testing.T, handler http.Handler) (*MetaClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Meta{BaseURL: server.URL, APIVersion: "v21.0", AccessToken: "token"}
	return NewClient(cfg, WithRetryPolicy(fastRetry)), server
}

func TestMetaClient_GetInsights_FollowsPaging(t *testing.T) {
	var server *httptest.Server
	var calls int32

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "token", r.URL.Query().Get("access_token"))

		if r.URL.Query().Get("after") == "" {
			assert.Equal(t, "/v21.0/act_1/insights", r.URL.Path)
			assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-07"}`, r.URL.Query().Get("time_range"))
			assert.Equal(t, `[{"field":"campaign.id","operator":"IN","value":["c1"]}]`, r.URL.Query().Get("filtering"))
			fmt.Fprintf(w, `{"data":[{"ad_id":"a1","spend":"10.5"}],"paging":{"next":"%s/v21.0/act_1/insights?access_token=token&after=abc"}}`, server.URL)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"ad_id":"a2","spend":"3","actions":[{"action_type":"lead","value":"1"}]}],"paging":{}}`))
	})

	client, srv := newTestClient(t, handler)
	server = srv

	query := metadomain.InsightsQuery{
		AdAccountID: "act_1",
		Since:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:       time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		CampaignIDs: []string{"c1"},
	}

	insights, err := client.GetInsights(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "a1", insights[0].AdID)
	assert.Equal(t, "lead", insights[1].Actions[0].ActionType)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMetaClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCalls int32
		validate  func(t *testing.T, err error)
	}{
		{
			name:      "Token expirado não é repetido",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"Session has expired","type":"OAuthException","code":190}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				var apiErr *metadomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.True(t, apiErr.IsTokenExpired())
				assert.Equal(t, "meta", apiErr.Upstream())
			},
		},
		{
			name:      "Erro 500 é repetido até esgotar as tentativas",
			status:    http.StatusInternalServerError,
			body:      `not json`,
			wantCalls: 3,
			validate: func(t *testing.T, err error) {
				var apiErr *metadomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "Meta API error HTTP 500", apiErr.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := client.ListCampaigns(context.Background(), "act_1")
			tt.validate(t, err)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestMetaClient_WithoutToken(t *testing.T) {
	client := NewClient(config.Meta{BaseURL: "http://localhost", APIVersion: "v21.0"})

	err := client.Get(context.Background(), "me", nil, &map[string]any{})
	assert.EqualError(t, err, "token de acesso do Meta não configurado")
}

func TestMetaClient_WithAccessToken(t *testing.T) {
	var got []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{"data":[],"paging":{}}`))
	})
	client, _ := newTestClient(t, handler)

	ctx := context.Background()
	_, err := client.ListCampaigns(WithAccessToken(ctx, " manual "), "act_1")
	require.NoError(t, err)
	_, err = client.ListCampaigns(WithAccessToken(ctx, ""), "act_1")
	require.NoError(t, err)

	assert.Equal(t, []string{"manual", "token"}, got)

	// o token manual basta quando a configuração não tem token
	bare := NewClient(config.Meta{BaseURL: "http://127.0.0.1:1", APIVersion: "v21.0"}, WithRetryPolicy(utils.RetryPolicy{Attempts: 1}))
	err = bare.Get(WithAccessToken(ctx, "manual"), "me", nil, &map[string]any{})
	require.Error(t, err)
	assert.NotEqual(t, "token de acesso do Meta não configurado", err.Error())
}

func TestEncodeParams(t *testing.T) {
	values := EncodeParams(map[string]any{
		"level":  "ad",
		"limit":  5000,
		"active": true,
		"ratio":  0.5,
		"skip":   nil,
		"ids":    []string{"1", "2"},
		"nested": map[string]any{"b": 1, "a": 2},
	})

	assert.Equal(t, "ad", values.Get("level"))
	assert.Equal(t, "5000", values.Get("limit"))
	assert.Equal(t, "true", values.Get("active"))
	assert.Equal(t, "0.5", values.Get("ratio"))
	assert.False(t, values.Has("skip"))
	assert.Equal(t, `["1","2"]`, values.Get("ids"))
	assert.Equal(t, `{"a":2,"b":1}`, values.Get("nested"))
}
