package leadspediaclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var fastRetry = utils.RetryPolicy{Attempts: 3, Initial: time.Millisecond, Max: 5 * time.Millisecond}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *LeadspediaClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Leadspedia{
		BaseURL:   server.URL + "/api/",
		APIKey:    "key",
		APISecret: "secret",
	}
	client, err := NewClient(cfg, append([]Option{WithRetryPolicy(fastRetry)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestLeadspediaClient_GetPaged(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/leads/getAll.do", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "secret", r.URL.Query().Get("api_secret"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("fromDate"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("start") {
		case "0":
			_, _ = w.Write([]byte(`{"success":true,"response":{"data":[{"leadID":"1"},{"leadID":"2"}]}}`))
		case "2":
			_, _ = w.Write([]byte(`{"success":true,"response":{"data":[{"leadID":"3"}]}}`))
		default:
			t.Errorf("página inesperada: %s", r.URL.Query().Get("start"))
		}
	})

	items, err := client.GetPaged(context.Background(), "leads/getAll.do", map[string]string{"fromDate": "2024-01-01"}, 2, 10)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLeadspediaClient_GetPaged_MaxPages(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"success":true,"response":[{"leadID":"x"}]}`))
	})

	items, err := client.GetPaged(context.Background(), "leads/getSold.do", nil, 1, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLeadspediaClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		handler   func(calls *int32) http.HandlerFunc
		wantCalls int32
		validate  func(t *testing.T, err error)
	}{
		{
			name: "success=false não é repetido",
			handler: func(calls *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(calls, 1)
					_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials","code":"AUTH"}`))
				}
			},
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				var apiErr *lpdomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "Leadspedia API error: Invalid credentials", apiErr.Message)
				assert.Equal(t, "AUTH", apiErr.ErrorCode)
			},
		},
		{
			name: "HTTP 500 sem JSON",
			handler: func(calls *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(calls, 1)
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("boom"))
				}
			},
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				var apiErr *lpdomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "Leadspedia API HTTP error 500", apiErr.Message)
			},
		},
		{
			name: "JSON inválido com status 200",
			handler: func(calls *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(calls, 1)
					_, _ = w.Write([]byte("<html>"))
				}
			},
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				var apiErr *lpdomain.APIError
				assert.False(t, errors.As(err, &apiErr))
				assert.Contains(t, err.Error(), "erro ao decodificar resposta")
			},
		},
		{
			name: "Falha de conexão é repetida",
			handler: func(calls *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					if atomic.AddInt32(calls, 1) == 1 {
						hj, ok := w.(http.Hijacker)
						require.True(t, ok)
						conn, _, err := hj.Hijack()
						require.NoError(t, err)
						_ = conn.Close()
						return
					}
					_, _ = w.Write([]byte(`{"result":"success","data":[]}`))
				}
			},
			wantCalls: 2,
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client := newTestClient(t, tt.handler(&calls))

			_, err := client.Get(context.Background(), "leads/getAll.do", nil)
			tt.validate(t, err)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestLeadspediaClient_Post(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "123", r.PostForm.Get("leadID"))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	body, err := client.Post(context.Background(), "leads/return.do", nil, map[string]string{"leadID": "123"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"success": true}, body)
}

func TestLeadspediaClient_GetVerticals(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.Empty(t, r.URL.Query().Get("api_key"))
		assert.Equal(t, "2023-07-01", r.URL.Query().Get("fromDate"))
		assert.Equal(t, "2024-06-30", r.URL.Query().Get("toDate"))
		_, _ = w.Write([]byte(`[{"verticalID":7,"verticalName":"Auto Insurance"}]`))
	}, WithClock(func() time.Time { return now }))

	verticals, err := client.GetVerticals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []lpdomain.Vertical{{ID: "7", Name: "Auto Insurance", Status: "active"}}, verticals)
}

func TestLeadspediaClient_GetAdvertisers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/advertisers/getAll.do", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"response":{"data":[{"advertiserID":"3","advertiserName":"Buyer","status":"paused"}]}}`))
	})

	advertisers, err := client.GetAdvertisers(context.Background())
	require.NoError(t, err)
	require.Len(t, advertisers, 1)
	assert.Equal(t, "Buyer", advertisers[0].Name)
	assert.Equal(t, "paused", advertisers[0].Status)
	assert.Nil(t, advertisers[0].Email)
}
