package lpdomain

import "sort"

// LeadStats são os totais do período exibidos no painel do Leadspedia
type LeadStats struct {
	TotalLeads        int     `json:"total_leads" yaml:"total_leads"`
	SoldLeads         int     `json:"sold_leads" yaml:"sold_leads"`
	RejectedLeads     int     `json:"rejected_leads" yaml:"rejected_leads"`
	PendingLeads      int     `json:"pending_leads" yaml:"pending_leads"`
	TotalRevenue      float64 `json:"total_revenue" yaml:"total_revenue"`
	TotalPayout       float64 `json:"total_payout" yaml:"total_payout"`
	TotalNetRevenue   float64 `json:"total_net_revenue" yaml:"total_net_revenue"`
	SellThroughRate   float64 `json:"sell_through_rate" yaml:"sell_through_rate"`
	AvgRevenuePerLead float64 `json:"avg_revenue_per_lead" yaml:"avg_revenue_per_lead"`
	AvgRevenuePerSold float64 `json:"avg_revenue_per_sold" yaml:"avg_revenue_per_sold"`
}

// AggregateLeadStats soma os leads do período. Rejeitados e pendentes contam apenas os
// status explícitos (rejected, declined, returned / pending, new, queued).
func AggregateLeadStats(dispositions []LeadDisposition) LeadStats {
	var stats LeadStats
	stats.TotalLeads = len(dispositions)
	if stats.TotalLeads == 0 {
		return stats
	}

	for _, d := range dispositions {
		if d.IsSold() {
			stats.SoldLeads++
		}
		if d.statusIn(StatusRejected, "declined", StatusReturned) {
			stats.RejectedLeads++
		}
		if d.IsPending() {
			stats.PendingLeads++
		}
		stats.TotalRevenue += d.Revenue
		stats.TotalPayout += d.Payout
		stats.TotalNetRevenue += d.NetRevenue()
	}

	stats.SellThroughRate = float64(stats.SoldLeads) / float64(stats.TotalLeads) * 100
	stats.AvgRevenuePerLead = stats.TotalRevenue / float64(stats.TotalLeads)
	if stats.SoldLeads > 0 {
		stats.AvgRevenuePerSold = stats.TotalRevenue / float64(stats.SoldLeads)
	}
	return stats
}

// BuyerPerformance agrega os leads vendidos por comprador
type BuyerPerformance struct {
	BuyerName    string  `json:"buyer_name" yaml:"buyer_name"`
	LeadsSold    int     `json:"leads_sold" yaml:"leads_sold"`
	TotalRevenue float64 `json:"total_revenue" yaml:"total_revenue"`
	AvgPrice     float64 `json:"avg_price" yaml:"avg_price"`
	PctOfTotal   float64 `json:"pct_of_total" yaml:"pct_of_total"`
}

// AggregateByBuyer considera apenas leads vendidos; sem comprador o lead entra como "Unknown".
// O resultado vem ordenado por receita decrescente.
func AggregateByBuyer(dispositions []LeadDisposition) []BuyerPerformance {
	byBuyer := make(map[string]*BuyerPerformance)
	var order []string
	total := 0.0

	for _, d := range dispositions {
		if !d.IsSold() {
			continue
		}
		buyer := "Unknown"
		if d.BuyerName != nil && *d.BuyerName != "" {
			buyer = *d.BuyerName
		}

		perf, ok := byBuyer[buyer]
		if !ok {
			perf = &BuyerPerformance{BuyerName: buyer}
			byBuyer[buyer] = perf
			order = append(order, buyer)
		}
		perf.LeadsSold++
		perf.TotalRevenue += d.Revenue
		total += d.Revenue
	}

	results := make([]BuyerPerformance, 0, len(order))
	for _, buyer := range order {
		perf := byBuyer[buyer]
		perf.AvgPrice = perf.TotalRevenue / float64(perf.LeadsSold)
		if total > 0 {
			perf.PctOfTotal = perf.TotalRevenue / total * 100
		}
		results = append(results, *perf)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalRevenue > results[j].TotalRevenue
	})
	return results
}
