package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := SessionFromContext(r.Context()); ok {
			w.Header().Set("X-Session", claims.SessionID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		request  func() *http.Request
		setup    func(auth *mocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Autenticação desabilitada libera tudo",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/insights", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Rota pública",
			request: func() *http.Request { return httptest.NewRequest(http.MethodPost, "/v1/login", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Sem cabeçalho Authorization",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/insights", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Token expirado",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/insights", nil)
				req.Header.Set("Authorization", "Bearer velho")
				return req
			},
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
				auth.EXPECT().ValidateToken("velho").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrExpiredToken, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Token válido no cabeçalho",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/insights", nil)
				req.Header.Set("Authorization", "Bearer bom")
				return req
			},
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{SessionID: "s-1"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, "s-1", rec.Header().Get("X-Session"))
			},
		},
		{
			name:    "Websocket com token na query",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/ws/alerts?token=ws", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
				auth.EXPECT().ValidateToken("ws").Return(&domain.Claims{SessionID: "s-2"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name:    "Token na query fora do websocket é ignorado",
			request: func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/insights?token=ws", nil) },
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Enabled().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			rec := httptest.NewRecorder()
			AuthMiddleware(auth)(sessionEcho()).ServeHTTP(rec, tt.request())
			tt.validate(t, rec)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		method   string
		origin   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Preflight de origem permitida",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodOptions,
			origin:  "http://localhost:3000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
			},
		},
		{
			name:    "Preflight de origem desconhecida",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodOptions,
			origin:  "https://evil.example",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Requisição de origem desconhecida segue sem cabeçalhos",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodGet,
			origin:  "https://evil.example",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Curinga aceita qualquer origem",
			origins: []string{"*"},
			method:  http.MethodGet,
			origin:  "http://192.168.0.10:8000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://192.168.0.10:8000", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Sem Origin",
			origins: []string{"*"},
			method:  http.MethodOptions,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/insights", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rec := httptest.NewRecorder()
			Cors(tt.origins)(sessionEcho()).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/insights", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/alerts?token=segredo", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestRedactQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/alerts?token=segredo&x=1", nil)
	assert.Equal(t, "token=%2A%2A%2A&x=1", redactQuery(req))
}

func TestMetaAccessToken(t *testing.T) {
	var tokens []string
	meta := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer meta.Close()

	client := metaclient.NewClient(config.Meta{BaseURL: meta.URL, APIVersion: "v24.0", AccessToken: "configurado"})
	handler := MetaAccessToken()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, client.Get(r.Context(), "me", nil, &map[string]any{}))
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set(metaclient.HeaderAccessToken, "manual")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	assert.Equal(t, []string{"manual", "configurado"}, tokens)
}
