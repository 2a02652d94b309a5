package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

// Client é o contrato usado pelo integrador do Meta
type Client interface {
	GetInsights(ctx context.Context, query metadomain.InsightsQuery) ([]metadomain.Insight, error)
	ListCampaigns(ctx context.Context, adAccountID string) ([]metadomain.Object, error)
	ListAdsets(ctx context.Context, adAccountID string, campaignIDs []string) ([]metadomain.Object, error)
	ListAds(ctx context.Context, adAccountID string, adsetIDs []string) ([]metadomain.Object, error)
}

type MetaClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	timeout     time.Duration
	retry       utils.RetryPolicy
}

type Option func(*MetaClient)

func WithHTTPClient(c *http.Client) Option {
	return func(m *MetaClient) { m.httpClient = c }
}

func WithRetryPolicy(p utils.RetryPolicy) Option {
	return func(m *MetaClient) { m.retry = p }
}

// HeaderAccessToken é o cabeçalho com o token informado manualmente no painel
const HeaderAccessToken = "X-Meta-Access-Token"

type accessTokenKey struct{}

// WithAccessToken faz as chamadas feitas com ctx usarem token no lugar do token da configuração
func WithAccessToken(ctx context.Context, token string) context.Context {
	if token = strings.TrimSpace(token); token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func (c *MetaClient) tokenFor(ctx context.Context) string {
	if token, ok := ctx.Value(accessTokenKey{}).(string); ok {
		return token
	}
	return c.accessToken
}

func NewClient(cfg config.Meta, opts ...Option) *MetaClient {
	client := &MetaClient{
		baseURL:     fmt.Sprintf("%s/%s/", strings.TrimRight(cfg.BaseURL, "/"), strings.Trim(cfg.APIVersion, "/")),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{},
		timeout:     defaultTimeout,
		retry:       utils.DefaultRetryPolicy,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type page struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging *metadomain.Paging    `json:"paging"`
}

// Get faz uma chamada ao Graph API e decodifica o corpo em out
func (c *MetaClient) Get(ctx context.Context, path string, params map[string]any, out any) error {
	token := c.tokenFor(ctx)
	if token == "" {
		return errors.New("token de acesso do Meta não configurado")
	}

	body, err := c.do(ctx, c.buildURL(path, params, token), path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do Meta em %s: %w", path, err)
	}
	return nil
}

// GetPaged segue paging.next e retorna os itens de "data" de todas as páginas
func (c *MetaClient) GetPaged(ctx context.Context, path string, params map[string]any) ([]jsoniter.RawMessage, error) {
	var first page
	if err := c.Get(ctx, path, params, &first); err != nil {
		return nil, err
	}

	items := append([]jsoniter.RawMessage{}, first.Data...)
	next := nextURL(first.Paging)
	pages := 1

	for next != "" {
		body, err := c.do(ctx, next, path)
		if err != nil {
			return nil, err
		}

		var p page
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("erro ao decodificar página %d de %s: %w", pages+1, path, err)
		}

		items = append(items, p.Data...)
		next = nextURL(p.Paging)
		pages++
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": path,
		"pages":    pages,
		"items":    len(items),
	}).Debug("meta: paginação concluída")

	return items, nil
}

func nextURL(p *metadomain.Paging) string {
	if p == nil {
		return ""
	}
	return p.Next
}

func (c *MetaClient) buildURL(path string, params map[string]any, token string) string {
	query := EncodeParams(params)
	query.Set("access_token", token)
	return c.baseURL + strings.TrimLeft(path, "/") + "?" + query.Encode()
}

func (c *MetaClient) do(ctx context.Context, rawURL, endpoint string) ([]byte, error) {
	var body []byte

	err := utils.Retry(ctx, c.retry, shouldRetry, func(attempt int) error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
		if err != nil {
			return fmt.Errorf("erro ao criar requisição para o Meta: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt + 1,
			}).WithError(err).Warn("meta: falha na requisição")
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("erro ao ler resposta do Meta: %w", err)
		}

		if resp.StatusCode >= http.StatusBadRequest {
			apiErr := ParseError(resp.StatusCode, data)
			logrus.WithFields(logrus.Fields{
				"endpoint":    endpoint,
				"attempt":     attempt + 1,
				"status_code": resp.StatusCode,
			}).Warn(apiErr.Error())
			if apiErr.IsTokenExpired() {
				return backoff.Permanent(apiErr)
			}
			return apiErr
		}

		body = data
		return nil
	})

	return body, err
}

// Erros de rede e erros da API são repetidos, exceto cancelamento (token expirado já volta como permanente)
func shouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// ParseError monta o APIError a partir do corpo de uma resposta com status >= 400
func ParseError(status int, body []byte) *metadomain.APIError {
	var payload metadomain.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == nil {
		return &metadomain.APIError{StatusCode: status}
	}
	return &metadomain.APIError{StatusCode: status, Details: payload.Error}
}

// EncodeParams converte os parâmetros para query string. Mapas, listas e structs
// são enviados como JSON compacto com chaves ordenadas, como o Graph API espera.
func EncodeParams(params map[string]any) url.Values {
	query := url.Values{}
	for k, v := range params {
		switch value := v.(type) {
		case nil:
			continue
		case string:
			query.Set(k, value)
		case int:
			query.Set(k, strconv.Itoa(value))
		case int64:
			query.Set(k, strconv.FormatInt(value, 10))
		case float64:
			query.Set(k, strconv.FormatFloat(value, 'f', -1, 64))
		case bool:
			query.Set(k, strconv.FormatBool(value))
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				logrus.WithField("param", k).WithError(err).Warn("meta: parâmetro ignorado")
				continue
			}
			query.Set(k, string(encoded))
		}
	}
	return query
}
