package domain

// RevenueKPIs são os indicadores de receita e lucratividade do período
type RevenueKPIs struct {
	TotalSpend      float64 `json:"total_spend" yaml:"total_spend"`
	TotalRevenue    float64 `json:"total_revenue" yaml:"total_revenue"`
	TotalPayout     float64 `json:"total_payout" yaml:"total_payout"`
	NetRevenue      float64 `json:"net_revenue" yaml:"net_revenue"`
	GrossProfit     float64 `json:"gross_profit" yaml:"gross_profit"`
	NetProfit       float64 `json:"net_profit" yaml:"net_profit"`
	ROAS            float64 `json:"roas" yaml:"roas"`
	ROIPct          float64 `json:"roi_pct" yaml:"roi_pct"`
	ProfitMarginPct float64 `json:"profit_margin_pct" yaml:"profit_margin_pct"`

	TotalMetaLeads int `json:"total_meta_leads" yaml:"total_meta_leads"`
	TotalLPLeads   int `json:"total_lp_leads" yaml:"total_lp_leads"`
	SoldLeads      int `json:"sold_leads" yaml:"sold_leads"`
	RejectedLeads  int `json:"rejected_leads" yaml:"rejected_leads"`
	PendingLeads   int `json:"pending_leads" yaml:"pending_leads"`
	UnsoldLeads    int `json:"unsold_leads" yaml:"unsold_leads"`

	SellThroughRate   float64 `json:"sell_through_rate" yaml:"sell_through_rate"`
	RejectionRate     float64 `json:"rejection_rate" yaml:"rejection_rate"`
	ConversionRate    float64 `json:"conversion_rate" yaml:"conversion_rate"`
	CPL               float64 `json:"cpl" yaml:"cpl"`
	RPL               float64 `json:"rpl" yaml:"rpl"`
	PPL               float64 `json:"ppl" yaml:"ppl"`
	AvgSalePrice      float64 `json:"avg_sale_price" yaml:"avg_sale_price"`
	EPC               float64 `json:"epc" yaml:"epc"`
	CPC               float64 `json:"cpc" yaml:"cpc"`
	BreakEvenCPL      float64 `json:"break_even_cpl" yaml:"break_even_cpl"`
	BreakEvenSellRate float64 `json:"break_even_sell_rate" yaml:"break_even_sell_rate"`
	IsProfitable      bool    `json:"is_profitable" yaml:"is_profitable"`
	MarginVsTarget    float64 `json:"margin_vs_target" yaml:"margin_vs_target"`
	SellRateVsTarget  float64 `json:"sell_rate_vs_target" yaml:"sell_rate_vs_target"`
}

// MetricChange compara uma métrica entre dois períodos
type MetricChange struct {
	Current   float64 `json:"current" yaml:"current"`
	Previous  float64 `json:"previous" yaml:"previous"`
	Change    float64 `json:"change" yaml:"change"`
	ChangePct float64 `json:"change_pct" yaml:"change_pct"`
}

// ProblemArea é um anúncio com gasto relevante e algum indicador fora da meta
type ProblemArea struct {
	CampaignName    string  `json:"campaign_name" yaml:"campaign_name"`
	AdsetName       string  `json:"adset_name" yaml:"adset_name"`
	AdName          string  `json:"ad_name" yaml:"ad_name"`
	Spend           float64 `json:"spend" yaml:"spend"`
	Revenue         float64 `json:"revenue" yaml:"revenue"`
	Profit          float64 `json:"profit" yaml:"profit"`
	ROI             float64 `json:"roi" yaml:"roi"`
	SellThroughRate float64 `json:"sell_through_rate" yaml:"sell_through_rate"`
	Issues          string  `json:"issues" yaml:"issues"`
	Severity        string  `json:"severity" yaml:"severity"`
}
