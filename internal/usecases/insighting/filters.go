package insighting

import (
	"slices"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

func matchesAny(value string, selected []string) bool {
	return len(selected) == 0 || slices.Contains(selected, value)
}

// ApplyFilters aplica os filtros de nome (multiselect) e as faixas numéricas.
// Linhas sem CPL contam como zero no filtro de CPL.
func ApplyFilters(rows []domain.InsightRow, filters *domain.InsightFilters) []domain.InsightRow {
	if filters == nil {
		return rows
	}

	out := make([]domain.InsightRow, 0, len(rows))
	for _, r := range rows {
		if !matchesAny(r.CampaignName, filters.CampaignNames) ||
			!matchesAny(r.AdsetName, filters.AdsetNames) ||
			!matchesAny(r.AdName, filters.AdNames) {
			continue
		}

		cpl := 0.0
		if r.CPL != nil {
			cpl = *r.CPL
		}
		if !filters.Spend.Contains(r.Spend) || !filters.Leads.Contains(float64(r.Leads)) || !filters.CPL.Contains(cpl) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Totals soma as linhas; o CPL total é nulo quando não há leads
func Totals(rows []domain.InsightRow) domain.InsightTotals {
	var t domain.InsightTotals
	for _, r := range rows {
		t.Spend += r.Spend
		t.Leads += r.Leads
		t.Impressions += r.Impressions
		t.Clicks += r.Clicks
		t.Reach += r.Reach
	}
	t.Spend = utils.RoundWithTwoDecimalPlace(t.Spend)
	if t.Leads > 0 {
		cpl := utils.RoundWithTwoDecimalPlace(t.Spend / float64(t.Leads))
		t.CPL = &cpl
	}
	return t
}

// Guardrail separa as linhas que já podem ser julgadas (gasto >= minSpend e leads >= minLeads).
// Vencedores têm CPL até o CPL médio do grupo julgado; os demais são perdedores.
func Guardrail(rows []domain.InsightRow, minSpend float64, minLeads int) *domain.GuardrailView {
	view := &domain.GuardrailView{
		MinSpend: minSpend,
		MinLeads: minLeads,
		Winners:  []domain.InsightRow{},
		Losers:   []domain.InsightRow{},
	}

	var judged []domain.InsightRow
	for _, r := range rows {
		if r.Spend >= minSpend && r.Leads >= minLeads {
			judged = append(judged, r)
		}
	}
	if len(judged) == 0 {
		return view
	}
	domain.SortRows(judged)

	avg := Totals(judged).CPL
	for _, r := range judged {
		if r.CPL != nil && avg != nil && *r.CPL <= *avg {
			view.Winners = append(view.Winners, r)
			continue
		}
		view.Losers = append(view.Losers, r)
	}
	return view
}

// filterMatched aplica os filtros de nome às linhas combinadas
func filterMatched(rows []domain.MatchedRow, filters *domain.InsightFilters) []domain.MatchedRow {
	if filters == nil {
		return rows
	}
	out := make([]domain.MatchedRow, 0, len(rows))
	for _, r := range rows {
		if matchesAny(r.CampaignName, filters.CampaignNames) &&
			matchesAny(r.AdsetName, filters.AdsetNames) &&
			matchesAny(r.AdName, filters.AdNames) &&
			filters.Spend.Contains(r.Spend) {
			out = append(out, r)
		}
	}
	return out
}
