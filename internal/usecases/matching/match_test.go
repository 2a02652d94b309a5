package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func lead(id, status string, revenue float64) lpdomain.LeadDisposition {
	return lpdomain.LeadDisposition{LeadID: id, Status: status, Revenue: revenue}
}

func TestMatch(t *testing.T) {
	metaRows := []domain.InsightRow{
		{CampaignID: "c1", CampaignName: "Campanha 1", AdID: "a1", AdName: "Anúncio 1", Spend: 30, Leads: 3, Clicks: 30, CPL: floatPtr(10)},
		{CampaignID: "c2", CampaignName: "Campanha 2", AdID: "a2", AdName: "Anúncio 2", Spend: 10, Leads: 1, Clicks: 10, CPL: floatPtr(10)},
	}
	dispositions := []lpdomain.LeadDisposition{
		lead("1", lpdomain.StatusSold, 30),
		lead("2", lpdomain.StatusSold, 30),
		lead("3", lpdomain.StatusSold, 30),
		lead("4", lpdomain.StatusRejected, 0),
	}

	tests := []struct {
		name         string
		metaRows     []domain.InsightRow
		dispositions []lpdomain.LeadDisposition
		mapped       MappingLookup
		validate     func(t *testing.T, result *domain.MatchResult)
	}{
		{
			name:         "Distribui os totais na proporção dos leads do Meta",
			metaRows:     metaRows,
			dispositions: dispositions,
			mapped:       func(id string) bool { return id == "c1" },
			validate: func(t *testing.T, result *domain.MatchResult) {
				require.Len(t, result.MatchedData, 2)
				assert.Equal(t, 4, result.MetaLeadCount)
				assert.Equal(t, 4, result.LPLeadCount)
				assert.Equal(t, []string{"c2"}, result.UnmatchedMetaCampaigns)
				assert.Equal(t, 100.0, result.MatchRate)

				first := result.MatchedData[0]
				assert.Equal(t, 3, first.LPTotalLeads)
				assert.Equal(t, 2, first.LPSoldLeads)
				assert.Equal(t, 1, first.LPRejectedLeads)
				assert.InDelta(t, 67.5, first.Revenue, 0.0001)
				assert.InDelta(t, 125.0, first.ROI, 0.0001)
				assert.InDelta(t, 37.5, first.Profit, 0.0001)
				assert.InDelta(t, 33.333, first.RejectionRate, 0.001)
				assert.InDelta(t, 33.75, first.AvgSalePrice, 0.0001)
				assert.InDelta(t, 22.5, first.EPL, 0.0001)
				assert.InDelta(t, 2.25, first.EPC, 0.0001)
				assert.Equal(t, 10.0, first.CPL)

				second := result.MatchedData[1]
				assert.Equal(t, 1, second.LPTotalLeads)
				assert.Equal(t, 1, second.LPSoldLeads)
				assert.Equal(t, 0, second.LPRejectedLeads)
				assert.Equal(t, 100.0, second.SellThroughRate)
			},
		},
		{
			name:         "Sem linhas do Meta - resultado vazio com total do Leadspedia",
			metaRows:     nil,
			dispositions: dispositions,
			validate: func(t *testing.T, result *domain.MatchResult) {
				assert.Empty(t, result.MatchedData)
				assert.Empty(t, result.UnmatchedMetaCampaigns)
				assert.Equal(t, 4, result.LPLeadCount)
				assert.Zero(t, result.MatchRate)
			},
		},
		{
			name: "Arredondamento para o par - meio lead não é atribuído",
			metaRows: []domain.InsightRow{
				{CampaignID: "c1", Leads: 1},
				{CampaignID: "c1", Leads: 1},
				{CampaignID: "c1", Leads: 1},
				{CampaignID: "c1", Leads: 1},
			},
			dispositions: []lpdomain.LeadDisposition{lead("1", lpdomain.StatusSold, 10), lead("2", lpdomain.StatusSold, 10)},
			mapped:       func(string) bool { return true },
			validate: func(t *testing.T, result *domain.MatchResult) {
				for _, row := range result.MatchedData {
					assert.Equal(t, 0, row.LPTotalLeads)
					assert.InDelta(t, 5.0, row.Revenue, 0.0001)
				}
				assert.Zero(t, result.MatchRate)
			},
		},
		{
			name:         "Sem mapeamento - todas as campanhas ficam sem correspondência",
			metaRows:     metaRows,
			dispositions: nil,
			mapped:       nil,
			validate: func(t *testing.T, result *domain.MatchResult) {
				assert.Equal(t, []string{"c1", "c2"}, result.UnmatchedMetaCampaigns)
				assert.Zero(t, result.MatchedData[0].LPTotalLeads)
				assert.Zero(t, result.MatchedData[0].SellThroughRate)
				assert.Equal(t, -100.0, result.MatchedData[0].ROI)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Match(tt.metaRows, tt.dispositions, tt.mapped))
		})
	}
}

func TestMergeSold(t *testing.T) {
	all := []lpdomain.LeadDisposition{lead("1", lpdomain.StatusPending, 0), lead("2", lpdomain.StatusSold, 10)}
	sold := []lpdomain.LeadDisposition{lead("2", lpdomain.StatusSold, 10), lead("3", lpdomain.StatusSold, 15), lead("3", lpdomain.StatusSold, 15)}

	merged := MergeSold(all, sold)
	require.Len(t, merged, 3)
	assert.Equal(t, "3", merged[2].LeadID)
	assert.Len(t, all, 2)

	assert.Equal(t, sold, MergeSold(nil, sold))
	assert.Equal(t, all, MergeSold(all, nil))
}
