package matching

import (
	"math"

	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

// MappingLookup informa se a campanha do Meta tem mapeamento para o Leadspedia
type MappingLookup func(metaCampaignID string) bool

type lpTotals struct {
	total    int
	sold     int
	rejected int
	pending  int
	revenue  float64
	payout   float64
}

func aggregate(dispositions []lpdomain.LeadDisposition) lpTotals {
	var t lpTotals
	t.total = len(dispositions)
	for _, d := range dispositions {
		if d.IsSold() {
			t.sold++
		}
		if d.IsRejected() {
			t.rejected++
		}
		if d.IsPending() {
			t.pending++
		}
		t.revenue += d.Revenue
		t.payout += d.Payout
	}
	return t
}

// Match distribui os totais do Leadspedia entre as linhas do Meta na proporção dos leads
// de cada linha. O Leadspedia não devolve o id do anúncio, então a atribuição é proporcional.
func Match(metaRows []domain.InsightRow, dispositions []lpdomain.LeadDisposition, mapped MappingLookup) *domain.MatchResult {
	result := &domain.MatchResult{
		MatchedData:            []domain.MatchedRow{},
		UnmatchedMetaCampaigns: []string{},
		LPLeadCount:            len(dispositions),
	}
	if len(metaRows) == 0 {
		return result
	}

	totals := aggregate(dispositions)

	metaLeads := 0
	for _, r := range metaRows {
		metaLeads += r.Leads
	}
	result.MetaLeadCount = metaLeads

	matchedLP := 0
	for _, r := range metaRows {
		proportion := 0.0
		if metaLeads > 0 && r.Leads > 0 {
			proportion = float64(r.Leads) / float64(metaLeads)
		}

		if mapped == nil || !mapped(r.CampaignID) {
			result.UnmatchedMetaCampaigns = append(result.UnmatchedMetaCampaigns, r.CampaignID)
		}

		row := matchedRow(r, totals, proportion)
		matchedLP += row.LPTotalLeads
		result.MatchedData = append(result.MatchedData, row)
	}

	if metaLeads > 0 {
		result.MatchRate = float64(matchedLP) / float64(metaLeads) * 100
	}
	return result
}

func share(n int, proportion float64) int {
	return int(math.RoundToEven(float64(n) * proportion))
}

func matchedRow(r domain.InsightRow, t lpTotals, proportion float64) domain.MatchedRow {
	row := domain.MatchedRow{
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		AdsetID:      r.AdsetID,
		AdsetName:    r.AdsetName,
		AdID:         r.AdID,
		AdName:       r.AdName,
		Spend:        r.Spend,
		MetaLeads:    r.Leads,
		Impressions:  r.Impressions,
		Clicks:       r.Clicks,

		LPTotalLeads:    share(t.total, proportion),
		LPSoldLeads:     share(t.sold, proportion),
		LPRejectedLeads: share(t.rejected, proportion),
		LPPendingLeads:  share(t.pending, proportion),
		Revenue:         t.revenue * proportion,
		Payout:          t.payout * proportion,
	}
	if r.CPL != nil {
		row.CPL = *r.CPL
	}

	row.NetRevenue = row.Revenue - row.Payout
	row.SellThroughRate = utils.SafeDiv(float64(row.LPSoldLeads), float64(row.LPTotalLeads)) * 100
	row.RejectionRate = utils.SafeDiv(float64(row.LPRejectedLeads), float64(row.LPTotalLeads)) * 100
	row.AvgSalePrice = utils.SafeDiv(row.Revenue, float64(row.LPSoldLeads))
	if row.Spend > 0 {
		row.ROI = (row.Revenue - row.Spend) / row.Spend * 100
	}
	row.Profit = row.Revenue - row.Spend
	row.ProfitPerLead = utils.SafeDiv(row.Profit, float64(row.MetaLeads))
	row.EPC = utils.SafeDiv(row.Revenue, float64(row.Clicks))
	row.EPL = utils.SafeDiv(row.Revenue, float64(row.MetaLeads))
	if row.AvgSalePrice > 0 {
		row.BreakEvenCPL = row.AvgSalePrice * (row.SellThroughRate / 100)
	}
	return row
}
