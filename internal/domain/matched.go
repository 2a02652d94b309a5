package domain

// MatchedRow junta uma linha do Meta com a parcela atribuída dos dados do Leadspedia
type MatchedRow struct {
	CampaignID   string  `json:"campaign_id" yaml:"campaign_id"`
	CampaignName string  `json:"campaign_name" yaml:"campaign_name"`
	AdsetID      string  `json:"adset_id" yaml:"adset_id"`
	AdsetName    string  `json:"adset_name" yaml:"adset_name"`
	AdID         string  `json:"ad_id" yaml:"ad_id"`
	AdName       string  `json:"ad_name" yaml:"ad_name"`
	Spend        float64 `json:"spend" yaml:"spend"`
	MetaLeads    int     `json:"meta_leads" yaml:"meta_leads"`
	Impressions  int     `json:"impressions" yaml:"impressions"`
	Clicks       int     `json:"clicks" yaml:"clicks"`
	CPL          float64 `json:"cpl" yaml:"cpl"`

	LPTotalLeads    int     `json:"lp_total_leads" yaml:"lp_total_leads"`
	LPSoldLeads     int     `json:"lp_sold_leads" yaml:"lp_sold_leads"`
	LPRejectedLeads int     `json:"lp_rejected_leads" yaml:"lp_rejected_leads"`
	LPPendingLeads  int     `json:"lp_pending_leads" yaml:"lp_pending_leads"`
	Revenue         float64 `json:"revenue" yaml:"revenue"`
	Payout          float64 `json:"payout" yaml:"payout"`
	NetRevenue      float64 `json:"net_revenue" yaml:"net_revenue"`

	SellThroughRate float64 `json:"sell_through_rate" yaml:"sell_through_rate"`
	RejectionRate   float64 `json:"rejection_rate" yaml:"rejection_rate"`
	AvgSalePrice    float64 `json:"avg_sale_price" yaml:"avg_sale_price"`
	ROI             float64 `json:"roi" yaml:"roi"`
	Profit          float64 `json:"profit" yaml:"profit"`
	ProfitPerLead   float64 `json:"profit_per_lead" yaml:"profit_per_lead"`
	EPC             float64 `json:"epc" yaml:"epc"`
	EPL             float64 `json:"epl" yaml:"epl"`
	BreakEvenCPL    float64 `json:"break_even_cpl" yaml:"break_even_cpl"`
}

// Dimension retorna o valor usado para agrupar por campanha, conjunto ou anúncio
func (r MatchedRow) Dimension(name string) (string, bool) {
	switch name {
	case "campaign_id":
		return r.CampaignID, true
	case "campaign_name":
		return r.CampaignName, true
	case "adset_id":
		return r.AdsetID, true
	case "adset_name":
		return r.AdsetName, true
	case "ad_id":
		return r.AdID, true
	case "ad_name":
		return r.AdName, true
	}
	return "", false
}

type MatchResult struct {
	MatchedData            []MatchedRow `json:"matched_data" yaml:"matched_data"`
	UnmatchedMetaCampaigns []string     `json:"unmatched_meta_campaigns" yaml:"unmatched_meta_campaigns"`
	MetaLeadCount          int          `json:"meta_lead_count" yaml:"meta_lead_count"`
	LPLeadCount            int          `json:"lp_lead_count" yaml:"lp_lead_count"`
	MatchRate              float64      `json:"match_rate" yaml:"match_rate"`
}
