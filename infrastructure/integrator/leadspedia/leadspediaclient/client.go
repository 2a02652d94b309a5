package leadspediaclient

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
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTimeout  = 30 * time.Second
	DefaultPageSize = 500
	DefaultMaxPages = 100
)

// Client é o contrato usado pelo integrador do Leadspedia
type Client interface {
	GetLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error)
	GetSoldLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error)
	GetDeliveredLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error)
	GetReturns(ctx context.Context, query lpdomain.ReturnQuery) ([]map[string]any, error)
	GetAffiliateClicks(ctx context.Context, query lpdomain.AffiliateClickQuery) ([]map[string]any, error)
	GetLeadReport(ctx context.Context, query lpdomain.LeadQuery) (map[string]any, error)
	GetAdvertisers(ctx context.Context) ([]lpdomain.Advertiser, error)
	GetContracts(ctx context.Context) ([]lpdomain.Contract, error)
	GetVerticals(ctx context.Context) ([]lpdomain.Vertical, error)
	GetAffiliates(ctx context.Context) ([]lpdomain.Affiliate, error)
}

type LeadspediaClient struct {
	baseURL    *url.URL
	apiKey     string
	apiSecret  string
	basicUser  string
	basicPass  string
	httpClient *http.Client
	timeout    time.Duration
	retry      utils.RetryPolicy
	now        func() time.Time
}

type Option func(*LeadspediaClient)

func WithHTTPClient(c *http.Client) Option {
	return func(l *LeadspediaClient) { l.httpClient = c }
}

func WithRetryPolicy(p utils.RetryPolicy) Option {
	return func(l *LeadspediaClient) { l.retry = p }
}

func WithClock(now func() time.Time) Option {
	return func(l *LeadspediaClient) { l.now = now }
}

func NewClient(cfg config.Leadspedia, opts ...Option) (*LeadspediaClient, error) {
	base := cfg.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar LEADSPEDIA_BASE_URL: %w", err)
	}

	client := &LeadspediaClient{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		basicUser:  cfg.BasicUser,
		basicPass:  cfg.BasicPass,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
		retry:      utils.DefaultRetryPolicy,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Get chama o endpoint com api_key e api_secret na query e devolve o JSON decodificado
func (c *LeadspediaClient) Get(ctx context.Context, endpoint string, params map[string]string) (any, error) {
	return c.do(ctx, http.MethodGet, endpoint, c.authParams(params), nil, false)
}

// Post envia data como formulário, com a autenticação na query
func (c *LeadspediaClient) Post(ctx context.Context, endpoint string, params, data map[string]string) (any, error) {
	form := url.Values{}
	for k, v := range data {
		form.Set(k, v)
	}
	return c.do(ctx, http.MethodPost, endpoint, c.authParams(params), form, false)
}

// GetWithBasicAuth é usado pelos endpoints de relatório
func (c *LeadspediaClient) GetWithBasicAuth(ctx context.Context, endpoint string, params map[string]string) (any, error) {
	return c.do(ctx, http.MethodGet, endpoint, toValues(params), nil, true)
}

// GetPaged percorre a paginação start/limit e devolve os itens de todas as páginas.
// Para na primeira página com menos de pageSize itens ou ao atingir maxPages.
func (c *LeadspediaClient) GetPaged(ctx context.Context, endpoint string, params map[string]string, pageSize, maxPages int) ([]map[string]any, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	query := make(map[string]string, len(params)+2)
	for k, v := range params {
		query[k] = v
	}
	query["limit"] = strconv.Itoa(pageSize)

	var items []map[string]any
	start := 0
	pages := 0
	for pages < maxPages {
		query["start"] = strconv.Itoa(start)

		body, err := c.Get(ctx, endpoint, query)
		if err != nil {
			return nil, err
		}
		pages++

		page, _ := body.(map[string]any)
		data := lpdomain.PageData(page)
		items = append(items, data...)

		if len(data) < pageSize {
			break
		}
		start += pageSize
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"pages":    pages,
		"items":    len(items),
	}).Debug("leadspedia: paginação concluída")

	return items, nil
}

func (c *LeadspediaClient) authParams(params map[string]string) url.Values {
	query := toValues(params)
	query.Set("api_key", c.apiKey)
	query.Set("api_secret", c.apiSecret)
	return query
}

func toValues(params map[string]string) url.Values {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return query
}

// Credenciais próprias de Basic Auth, ou api_key/api_secret na falta delas
func (c *LeadspediaClient) basicCredentials() (string, string) {
	user := c.basicUser
	if user == "" {
		user = c.apiKey
	}
	pass := c.basicPass
	if pass == "" {
		pass = c.apiSecret
	}
	return user, pass
}

func (c *LeadspediaClient) endpointURL(endpoint string, query url.Values) string {
	ref := &url.URL{Path: strings.TrimLeft(endpoint, "/")}
	u := c.baseURL.ResolveReference(ref)
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *LeadspediaClient) do(ctx context.Context, method, endpoint string, query url.Values, form url.Values, basicAuth bool) (any, error) {
	rawURL := c.endpointURL(endpoint, query)
	var result any

	err := utils.Retry(ctx, c.retry, shouldRetry, func(attempt int) error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var reqBody io.Reader
		if form != nil {
			reqBody = strings.NewReader(form.Encode())
		}

		req, err := http.NewRequestWithContext(reqCtx, method, rawURL, reqBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("erro ao criar requisição para o Leadspedia: %w", err))
		}
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		if basicAuth {
			req.SetBasicAuth(c.basicCredentials())
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt + 1,
			}).WithError(err).Warn("leadspedia: falha na requisição")
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("erro ao ler resposta do Leadspedia: %w", err)
		}

		var body any
		decodeErr := json.Unmarshal(data, &body)

		payload, _ := body.(map[string]any)
		if apiErr := lpdomain.CheckPayload(resp.StatusCode, payload); apiErr != nil {
			logrus.WithFields(logrus.Fields{
				"endpoint":    endpoint,
				"status_code": resp.StatusCode,
				"lp_code":     apiErr.ErrorCode,
			}).Warn(apiErr.Error())
			return apiErr
		}

		if decodeErr != nil {
			return backoff.Permanent(fmt.Errorf("erro ao decodificar resposta do Leadspedia em %s: %w", endpoint, decodeErr))
		}

		result = body
		return nil
	})

	return result, err
}

// Só erros de transporte são repetidos; erros da API e cancelamento voltam na hora
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *lpdomain.APIError
	return !errors.As(err, &apiErr)
}
