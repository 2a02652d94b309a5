package metadomain

import (
	"strings"
	"time"
)

// InsightFields são os campos solicitados ao endpoint /insights
var InsightFields = []string{
	"campaign_id",
	"campaign_name",
	"adset_id",
	"adset_name",
	"ad_id",
	"ad_name",
	"spend",
	"impressions",
	"reach",
	"frequency",
	"clicks",
	"ctr",
	"cpc",
	"actions",
	"cost_per_action_type",
}

// BreakdownColumns são as colunas de breakdown que podem aparecer nas linhas
var BreakdownColumns = []string{"age", "gender", "publisher_platform", "platform_position", "device_platform"}

// BreakdownPresets são os agrupamentos oferecidos pelo painel
var BreakdownPresets = map[string][]string{
	"none":       nil,
	"age_gender": {"age", "gender"},
	"placement":  {"publisher_platform", "platform_position"},
	"device":     {"device_platform"},
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha do endpoint /insights. O Graph API devolve números como string.
type Insight struct {
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	AdsetID           string   `json:"adset_id"`
	AdsetName         string   `json:"adset_name"`
	AdID              string   `json:"ad_id"`
	AdName            string   `json:"ad_name"`
	Spend             string   `json:"spend"`
	Impressions       string   `json:"impressions"`
	Reach             string   `json:"reach"`
	Frequency         string   `json:"frequency"`
	Clicks            string   `json:"clicks"`
	CTR               string   `json:"ctr"`
	CPC               string   `json:"cpc"`
	Actions           []Action `json:"actions"`
	CostPerActionType []Action `json:"cost_per_action_type"`

	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	PlatformPosition  string `json:"platform_position,omitempty"`
	DevicePlatform    string `json:"device_platform,omitempty"`
}

type Filter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// InsightsQuery descreve uma consulta ao endpoint {act}/insights
type InsightsQuery struct {
	AdAccountID string
	Since       time.Time
	Until       time.Time
	Level       string
	Breakdowns  []string
	CampaignIDs []string
	AdsetIDs    []string
	AdIDs       []string
}

func (q InsightsQuery) level() string {
	if q.Level == "" {
		return "ad"
	}
	return q.Level
}

// Path retorna o caminho relativo do endpoint
func (q InsightsQuery) Path() string {
	return q.AdAccountID + "/insights"
}

// Params monta os parâmetros da consulta; time_range e filtering são codificados em JSON pelo cliente
func (q InsightsQuery) Params() map[string]any {
	params := map[string]any{
		"level":      q.level(),
		"time_range": TimeRange{Since: q.Since.Format(time.DateOnly), Until: q.Until.Format(time.DateOnly)},
		"limit":      5000,
		"fields":     strings.Join(InsightFields, ","),
	}

	if len(q.Breakdowns) > 0 {
		params["breakdowns"] = strings.Join(q.Breakdowns, ",")
	}

	if filters := q.Filters(); len(filters) > 0 {
		params["filtering"] = filters
	}

	return params
}

func (q InsightsQuery) Filters() []Filter {
	var filters []Filter
	if len(q.CampaignIDs) > 0 {
		filters = append(filters, Filter{Field: "campaign.id", Operator: "IN", Value: q.CampaignIDs})
	}
	if len(q.AdsetIDs) > 0 {
		filters = append(filters, Filter{Field: "adset.id", Operator: "IN", Value: q.AdsetIDs})
	}
	if len(q.AdIDs) > 0 {
		filters = append(filters, Filter{Field: "ad.id", Operator: "IN", Value: q.AdIDs})
	}
	return filters
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// KeyMaterial é a base da chave de cache da consulta
func (q InsightsQuery) KeyMaterial() map[string]any {
	return map[string]any{
		"ad_account_id": q.AdAccountID,
		"since":         q.Since.Format(time.DateOnly),
		"until":         q.Until.Format(time.DateOnly),
		"level":         q.level(),
		"breakdowns":    nonNil(q.Breakdowns),
		"filters": map[string]any{
			"campaign_ids": nonNil(q.CampaignIDs),
			"adset_ids":    nonNil(q.AdsetIDs),
			"ad_ids":       nonNil(q.AdIDs),
		},
	}
}
