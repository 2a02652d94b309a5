package domain

import (
	"time"
)

const (
	DefaultGuardrailMinSpend = 50.0
	DefaultGuardrailMinLeads = 5
)

// Range é um filtro numérico opcional min/max, com as duas pontas inclusivas
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// InsightFilters reúne os filtros do painel
type InsightFilters struct {
	Since     time.Time `json:"since" yaml:"since"`
	Until     time.Time `json:"until" yaml:"until"`
	Breakdown string    `json:"breakdown" yaml:"breakdown"`

	CampaignIDs []string `json:"campaign_ids,omitempty" yaml:"campaign_ids,omitempty"`
	AdsetIDs    []string `json:"adset_ids,omitempty" yaml:"adset_ids,omitempty"`
	AdIDs       []string `json:"ad_ids,omitempty" yaml:"ad_ids,omitempty"`

	CampaignNames []string `json:"campaign_names,omitempty" yaml:"campaign_names,omitempty"`
	AdsetNames    []string `json:"adset_names,omitempty" yaml:"adset_names,omitempty"`
	AdNames       []string `json:"ad_names,omitempty" yaml:"ad_names,omitempty"`

	Spend Range `json:"spend" yaml:"spend"`
	Leads Range `json:"leads" yaml:"leads"`
	CPL   Range `json:"cpl" yaml:"cpl"`

	GuardrailMinSpend float64 `json:"min_spend" yaml:"min_spend"`
	GuardrailMinLeads int     `json:"min_leads" yaml:"min_leads"`
}

// InsightTotals soma as linhas exibidas
type InsightTotals struct {
	Spend       float64  `json:"spend" yaml:"spend"`
	Leads       int      `json:"leads" yaml:"leads"`
	CPL         *float64 `json:"cpl" yaml:"cpl"`
	Impressions int      `json:"impressions" yaml:"impressions"`
	Clicks      int      `json:"clicks" yaml:"clicks"`
	Reach       int      `json:"reach" yaml:"reach"`
}

type InsightsResponse struct {
	Since     string         `json:"since" yaml:"since"`
	Until     string         `json:"until" yaml:"until"`
	Breakdown string         `json:"breakdown" yaml:"breakdown"`
	TotalRows int            `json:"total_rows" yaml:"total_rows"`
	Rows      []InsightRow   `json:"rows" yaml:"rows"`
	Totals    InsightTotals  `json:"totals" yaml:"totals"`
	Guardrail *GuardrailView `json:"guardrail,omitempty" yaml:"guardrail,omitempty"`
}

// GuardrailView lista apenas anúncios com gasto e leads suficientes para julgamento
type GuardrailView struct {
	MinSpend float64      `json:"min_spend" yaml:"min_spend"`
	MinLeads int          `json:"min_leads" yaml:"min_leads"`
	Winners  []InsightRow `json:"winners" yaml:"winners"`
	Losers   []InsightRow `json:"losers" yaml:"losers"`
}

// CombinedView é a visão de ROI que junta Meta e Leadspedia
type CombinedView struct {
	Since                  string                  `json:"since" yaml:"since"`
	Until                  string                  `json:"until" yaml:"until"`
	KPIs                   RevenueKPIs             `json:"kpis" yaml:"kpis"`
	ByCampaign             map[string]RevenueKPIs  `json:"by_campaign" yaml:"by_campaign"`
	PeriodComparison       map[string]MetricChange `json:"period_comparison,omitempty" yaml:"period_comparison,omitempty"`
	Rows                   []MatchedRow            `json:"rows" yaml:"rows"`
	UnmatchedMetaCampaigns []string                `json:"unmatched_meta_campaigns" yaml:"unmatched_meta_campaigns"`
	MatchRate              float64                 `json:"match_rate" yaml:"match_rate"`
	MetaLeadCount          int                     `json:"meta_lead_count" yaml:"meta_lead_count"`
	LPLeadCount            int                     `json:"lp_lead_count" yaml:"lp_lead_count"`
}
