package domain

import "sort"

// InsightRow é uma linha de insight do Meta já com leads e CPL calculados
type InsightRow struct {
	CampaignID   string `json:"campaign_id" yaml:"campaign_id"`
	AdsetID      string `json:"adset_id" yaml:"adset_id"`
	AdID         string `json:"ad_id" yaml:"ad_id"`
	CampaignName string `json:"campaign_name" yaml:"campaign_name"`
	AdsetName    string `json:"adset_name" yaml:"adset_name"`
	AdName       string `json:"ad_name" yaml:"ad_name"`

	Age               string `json:"age,omitempty" yaml:"age,omitempty"`
	Gender            string `json:"gender,omitempty" yaml:"gender,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty" yaml:"publisher_platform,omitempty"`
	PlatformPosition  string `json:"platform_position,omitempty" yaml:"platform_position,omitempty"`
	DevicePlatform    string `json:"device_platform,omitempty" yaml:"device_platform,omitempty"`

	Spend       float64  `json:"spend" yaml:"spend"`
	Leads       int      `json:"leads" yaml:"leads"`
	CPL         *float64 `json:"cpl" yaml:"cpl"`
	Impressions int      `json:"impressions" yaml:"impressions"`
	Clicks      int      `json:"clicks" yaml:"clicks"`
	CTR         float64  `json:"ctr" yaml:"ctr"`
	CPC         float64  `json:"cpc" yaml:"cpc"`
	Frequency   float64  `json:"frequency" yaml:"frequency"`
	Reach       int      `json:"reach" yaml:"reach"`
}

// Breakdown retorna o valor da coluna de breakdown pelo nome usado no Graph API
func (r InsightRow) Breakdown(column string) string {
	switch column {
	case "age":
		return r.Age
	case "gender":
		return r.Gender
	case "publisher_platform":
		return r.PublisherPlatform
	case "platform_position":
		return r.PlatformPosition
	case "device_platform":
		return r.DevicePlatform
	}
	return ""
}

// ActionTypeTotal é a soma de um action_type em todas as linhas
type ActionTypeTotal struct {
	ActionType string  `json:"action_type" yaml:"action_type"`
	TotalValue float64 `json:"total_value" yaml:"total_value"`
}

// SortRows ordena por CPL crescente (sem CPL por último) e depois por gasto decrescente
func SortRows(rows []InsightRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.CPL == nil && b.CPL != nil:
			return false
		case a.CPL != nil && b.CPL == nil:
			return true
		case a.CPL != nil && b.CPL != nil && *a.CPL != *b.CPL:
			return *a.CPL < *b.CPL
		}
		return a.Spend > b.Spend
	})
}
