package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

const (
	DefaultTargetROI      = 20.0
	DefaultTargetSellRate = 95.0
	DefaultMinSpend       = 50.0
)

const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Targets são as metas usadas nas comparações
type Targets struct {
	ROI      float64
	SellRate float64
}

func DefaultTargets() Targets {
	return Targets{ROI: DefaultTargetROI, SellRate: DefaultTargetSellRate}
}

func round2(f float64) float64 { return utils.RoundWithTwoDecimalPlace(f) }
func round4(f float64) float64 { return utils.RoundWithFourDecimalPlace(f) }

// CalculateKPIs consolida as linhas cruzadas. Sem linhas, os desvios ficam iguais a -meta.
func CalculateKPIs(rows []domain.MatchedRow, targets Targets) domain.RevenueKPIs {
	if len(rows) == 0 {
		return domain.RevenueKPIs{
			MarginVsTarget:   -targets.ROI,
			SellRateVsTarget: -targets.SellRate,
		}
	}

	var spend, revenue, payout float64
	var metaLeads, lpLeads, sold, rejected, pending, clicks int
	for _, r := range rows {
		spend += r.Spend
		revenue += r.Revenue
		payout += r.Payout
		metaLeads += r.MetaLeads
		lpLeads += r.LPTotalLeads
		sold += r.LPSoldLeads
		rejected += r.LPRejectedLeads
		pending += r.LPPendingLeads
		clicks += r.Clicks
	}

	netRevenue := revenue - payout
	grossProfit := revenue - spend
	netProfit := netRevenue - spend

	roas := utils.SafeDiv(revenue, spend)
	roi := 0.0
	if spend > 0 {
		roi = (revenue - spend) / spend * 100
	}
	profitMargin := 0.0
	if revenue > 0 {
		profitMargin = grossProfit / revenue * 100
	}

	sellThrough := utils.SafeDiv(float64(sold), float64(lpLeads)) * 100
	rejection := utils.SafeDiv(float64(rejected), float64(lpLeads)) * 100
	conversion := utils.SafeDiv(float64(sold), float64(metaLeads)) * 100

	cpl := utils.SafeDiv(spend, float64(metaLeads))
	rpl := utils.SafeDiv(revenue, float64(metaLeads))
	ppl := utils.SafeDiv(grossProfit, float64(metaLeads))
	avgSale := utils.SafeDiv(revenue, float64(sold))
	epc := utils.SafeDiv(revenue, float64(clicks))
	cpc := utils.SafeDiv(spend, float64(clicks))

	breakEvenCPL, breakEvenSellRate := 0.0, 0.0
	if avgSale > 0 {
		breakEvenCPL = avgSale * (sellThrough / 100)
		breakEvenSellRate = cpl / avgSale * 100
	}

	return domain.RevenueKPIs{
		TotalSpend:        round2(spend),
		TotalRevenue:      round2(revenue),
		TotalPayout:       round2(payout),
		NetRevenue:        round2(netRevenue),
		GrossProfit:       round2(grossProfit),
		NetProfit:         round2(netProfit),
		ROAS:              round2(roas),
		ROIPct:            round2(roi),
		ProfitMarginPct:   round2(profitMargin),
		TotalMetaLeads:    metaLeads,
		TotalLPLeads:      lpLeads,
		SoldLeads:         sold,
		RejectedLeads:     rejected,
		PendingLeads:      pending,
		UnsoldLeads:       lpLeads - sold,
		SellThroughRate:   round2(sellThrough),
		RejectionRate:     round2(rejection),
		ConversionRate:    round2(conversion),
		CPL:               round2(cpl),
		RPL:               round2(rpl),
		PPL:               round2(ppl),
		AvgSalePrice:      round2(avgSale),
		EPC:               round4(epc),
		CPC:               round4(cpc),
		BreakEvenCPL:      round2(breakEvenCPL),
		BreakEvenSellRate: round2(breakEvenSellRate),
		IsProfitable:      grossProfit > 0,
		MarginVsTarget:    round2(roi - targets.ROI),
		SellRateVsTarget:  round2(sellThrough - targets.SellRate),
	}
}

// KPIsByDimension agrupa as linhas pela dimensão (campaign_name, adset_name, ad_name...)
func KPIsByDimension(rows []domain.MatchedRow, dimension string, targets Targets) map[string]domain.RevenueKPIs {
	groups := make(map[string][]domain.MatchedRow)
	for _, r := range rows {
		value, ok := r.Dimension(dimension)
		if !ok {
			return map[string]domain.RevenueKPIs{}
		}
		groups[value] = append(groups[value], r)
	}

	result := make(map[string]domain.RevenueKPIs, len(groups))
	for value, group := range groups {
		result[value] = CalculateKPIs(group, targets)
	}
	return result
}

func change(current, previous float64) domain.MetricChange {
	diff := current - previous
	pct := 0.0
	if previous != 0 {
		pct = diff / previous * 100
	}
	return domain.MetricChange{Current: current, Previous: previous, Change: diff, ChangePct: pct}
}

// PeriodComparison compara os KPIs do período atual com o anterior
func PeriodComparison(current, previous []domain.MatchedRow, targets Targets) map[string]domain.MetricChange {
	cur := CalculateKPIs(current, targets)
	prev := CalculateKPIs(previous, targets)

	return map[string]domain.MetricChange{
		"spend":             change(cur.TotalSpend, prev.TotalSpend),
		"revenue":           change(cur.TotalRevenue, prev.TotalRevenue),
		"profit":            change(cur.GrossProfit, prev.GrossProfit),
		"roi":               change(cur.ROIPct, prev.ROIPct),
		"sell_through_rate": change(cur.SellThroughRate, prev.SellThroughRate),
		"cpl":               change(cur.CPL, prev.CPL),
		"avg_sale_price":    change(cur.AvgSalePrice, prev.AvgSalePrice),
		"leads":             change(float64(cur.TotalMetaLeads), float64(prev.TotalMetaLeads)),
		"sold_leads":        change(float64(cur.SoldLeads), float64(prev.SoldLeads)),
	}
}

var severityOrder = map[string]int{SeverityCritical: 0, SeverityWarning: 1, SeverityInfo: 2}

// IdentifyProblemAreas diagnostica as linhas com gasto >= minSpend, das mais graves para as
// menos graves e, dentro da mesma gravidade, do menor lucro para o maior
func IdentifyProblemAreas(rows []domain.MatchedRow, minSpend float64, targets Targets) []domain.ProblemArea {
	problems := []domain.ProblemArea{}

	for _, r := range rows {
		if r.Spend < minSpend {
			continue
		}

		var issues []string
		severity := SeverityInfo

		if r.SellThroughRate < targets.SellRate {
			issues = append(issues, fmt.Sprintf("Low sell-through: %.1f%% (target: %s%%)", r.SellThroughRate, formatTarget(targets.SellRate)))
			if r.SellThroughRate >= targets.SellRate-10 {
				severity = SeverityWarning
			} else {
				severity = SeverityCritical
			}
		}

		if r.ROI < targets.ROI {
			issues = append(issues, fmt.Sprintf("Low ROI: %.1f%% (target: %s%%)", r.ROI, formatTarget(targets.ROI)))
			if r.ROI < 0 {
				severity = SeverityCritical
			} else if severity != SeverityCritical {
				severity = SeverityWarning
			}
		}

		if r.Profit < 0 {
			issues = append(issues, fmt.Sprintf("Negative profit: $%.2f", r.Profit))
			severity = SeverityCritical
		}

		if r.RejectionRate > 10 {
			issues = append(issues, fmt.Sprintf("High rejection: %.1f%%", r.RejectionRate))
			if severity != SeverityCritical {
				severity = SeverityWarning
			}
		}

		if r.BreakEvenCPL > 0 && r.CPL > r.BreakEvenCPL {
			issues = append(issues, fmt.Sprintf("CPL $%.2f exceeds break-even $%.2f", r.CPL, r.BreakEvenCPL))
			severity = SeverityCritical
		}

		if len(issues) == 0 {
			continue
		}

		problems = append(problems, domain.ProblemArea{
			CampaignName:    r.CampaignName,
			AdsetName:       r.AdsetName,
			AdName:          r.AdName,
			Spend:           r.Spend,
			Revenue:         r.Revenue,
			Profit:          r.Profit,
			ROI:             r.ROI,
			SellThroughRate: r.SellThroughRate,
			Issues:          strings.Join(issues, "; "),
			Severity:        severity,
		})
	}

	sort.SliceStable(problems, func(i, j int) bool {
		a, b := severityOrder[problems[i].Severity], severityOrder[problems[j].Severity]
		if a != b {
			return a < b
		}
		return problems[i].Profit < problems[j].Profit
	})
	return problems
}

// formatTarget imprime 95 como "95.0", como nas mensagens exibidas no painel
func formatTarget(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.1f", f)
	}
	return fmt.Sprintf("%g", f)
}
