package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultLookbackDays é o período do painel quando nenhuma data é informada
const defaultLookbackDays = 7

var now = time.Now

// parsePeriod aceita preset=7d|14d|30d ou since/until no formato 2006-01-02
func parsePeriod(q url.Values) (utils.DateRange, error) {
	if preset := q.Get("preset"); preset != "" {
		period, ok := utils.PresetRange(preset, now())
		if !ok {
			return utils.DateRange{}, fmt.Errorf("preset desconhecido %q (use 7d, 14d ou 30d)", preset)
		}
		return period, nil
	}
	return utils.ParseDateRange(q.Get("since"), q.Get("until"), defaultLookbackDays, now())
}

// parseList lê listas separadas por vírgula e também parâmetros repetidos
func parseList(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func parseFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s deve ser numérico: %q", key, raw)
	}
	return &v, nil
}

// parseRange lê <key>_min e <key>_max
func parseRange(q url.Values, key string) (domain.Range, error) {
	minValue, err := parseFloat(q, key+"_min")
	if err != nil {
		return domain.Range{}, err
	}
	maxValue, err := parseFloat(q, key+"_max")
	if err != nil {
		return domain.Range{}, err
	}
	return domain.Range{Min: minValue, Max: maxValue}, nil
}

func parseBool(q url.Values, key string, fallback bool) bool {
	raw := q.Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(q url.Values, key string, fallback int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser inteiro: %q", key, raw)
	}
	return v, nil
}

// parseFilters monta os filtros do painel a partir da query string
func parseFilters(r *http.Request) (*domain.InsightFilters, error) {
	q := r.URL.Query()

	period, err := parsePeriod(q)
	if err != nil {
		return nil, err
	}

	filters := &domain.InsightFilters{
		Since:             period.Since,
		Until:             period.Until,
		Breakdown:         q.Get("breakdown"),
		CampaignIDs:       parseList(q, "campaign_ids"),
		AdsetIDs:          parseList(q, "adset_ids"),
		AdIDs:             parseList(q, "ad_ids"),
		CampaignNames:     parseList(q, "campaign_names"),
		AdsetNames:        parseList(q, "adset_names"),
		AdNames:           parseList(q, "ad_names"),
		GuardrailMinSpend: domain.DefaultGuardrailMinSpend,
		GuardrailMinLeads: domain.DefaultGuardrailMinLeads,
	}

	if filters.Spend, err = parseRange(q, "spend"); err != nil {
		return nil, err
	}
	if filters.Leads, err = parseRange(q, "leads"); err != nil {
		return nil, err
	}
	if filters.CPL, err = parseRange(q, "cpl"); err != nil {
		return nil, err
	}

	minSpend, err := parseFloat(q, "min_spend")
	if err != nil {
		return nil, err
	}
	if minSpend != nil {
		filters.GuardrailMinSpend = *minSpend
	}
	if filters.GuardrailMinLeads, err = parseInt(q, "min_leads", domain.DefaultGuardrailMinLeads); err != nil {
		return nil, err
	}

	return filters, nil
}

func parseLeadsQuery(r *http.Request) (reporting.LeadsQuery, error) {
	q := r.URL.Query()
	period, err := parsePeriod(q)
	if err != nil {
		return reporting.LeadsQuery{}, err
	}
	return reporting.LeadsQuery{
		Since:      period.Since,
		Until:      period.Until,
		Source:     q.Get("source"),
		CampaignID: q.Get("campaign_id"),
		VerticalID: q.Get("vertical_id"),
		Status:     q.Get("status"),
	}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar a resposta")
	}
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("corpo da requisição vazio")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "formato de requisição inválido")
	}
	return nil
}

// errorCode traduz os erros dos serviços para os códigos da API
func errorCode(err error) string {
	switch {
	case errors.Is(err, insighting.ErrInvalidPeriod),
		errors.Is(err, insighting.ErrInvalidBreakdown),
		errors.Is(err, reporting.ErrInvalidPeriod),
		errors.Is(err, reporting.ErrInvalidSource),
		errors.Is(err, analysis.ErrInvalidConfidenceFilter):
		return apiErrors.ErrInvalidRequest

	case errors.Is(err, insighting.ErrMetaNotConfigured),
		errors.Is(err, insighting.ErrLeadspediaNotConfigured),
		errors.Is(err, reporting.ErrLeadspediaDisabled),
		errors.Is(err, reporting.ErrNoAffiliate),
		errors.Is(err, exporting.ErrSheetsNotConfigured),
		errors.Is(err, exporting.ErrUnsafeCredentials):
		return apiErrors.ErrIntegrationDisabled

	case errors.Is(err, scheduler.ErrUnknownJob):
		return apiErrors.ErrNotFound
	}
	return apiErrors.ErrInternalServer
}

// writeServiceError registra e responde o erro de um serviço
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	code := errorCode(err)
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(msg)
	} else {
		logger.Warn(msg)
	}
	apiErrors.WriteFromError(w, err, code)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"query": r.URL.RawQuery,
		"error": err.Error(),
	}).Warn("Parâmetros inválidos")
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
