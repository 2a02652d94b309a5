package exporting_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestInsightTable(t *testing.T) {
	t.Run("Sem breakdown", func(t *testing.T) {
		table := exporting.InsightTable([]domain.InsightRow{
			{CampaignID: "1", AdsetID: "2", AdID: "3", CampaignName: "Auto", AdsetName: "A", AdName: "Vídeo", Spend: 12.5, Leads: 5, CPL: floatPtr(2.5), Impressions: 100, Clicks: 10, CTR: 10, CPC: 1.25, Frequency: 1.1, Reach: 90},
			{CampaignID: "1", AdName: "Sem leads", Spend: 3},
		})

		expectedHeader := []string{"campaign_id", "adset_id", "ad_id", "campaign_name", "adset_name", "ad_name", "spend", "leads", "cpl", "impressions", "clicks", "ctr", "cpc", "frequency", "reach"}
		if diff := cmp.Diff(expectedHeader, table.Header); diff != "" {
			t.Errorf("cabeçalho diferente (-esperado +obtido):\n%s", diff)
		}
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"1", "2", "3", "Auto", "A", "Vídeo", "12.5", "5", "2.5", "100", "10", "10", "1.25", "1.1", "90"}, table.Rows[0])
		assert.Equal(t, "", table.Rows[1][8], "CPL nulo vira célula vazia")
	})

	t.Run("Breakdown presente em alguma linha", func(t *testing.T) {
		table := exporting.InsightTable([]domain.InsightRow{
			{AdName: "x", Age: "18-24", Gender: "female"},
			{AdName: "y"},
		})

		assert.Equal(t, []string{"campaign_id", "adset_id", "ad_id", "age", "gender", "campaign_name"}, table.Header[:6])
		assert.Equal(t, "18-24", table.Rows[0][3])
		assert.Equal(t, "", table.Rows[1][3])
	})
}

func TestCSVBytes(t *testing.T) {
	table := exporting.Table{
		Header: []string{"ad_name", "spend"},
		Rows:   [][]string{{"Vídeo, versão 2", "10"}, {"Imagem", "2.5"}},
	}

	out, err := exporting.CSVBytes(table)

	require.NoError(t, err)
	assert.Equal(t, "ad_name,spend\n\"Vídeo, versão 2\",10\nImagem,2.5\n", string(out))
}

func TestMatchedTable(t *testing.T) {
	table := exporting.MatchedTable([]domain.MatchedRow{{CampaignName: "Auto", Spend: 100, Revenue: 250, ROI: 150, LPSoldLeads: 9}})

	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], len(table.Header))
	assert.Equal(t, "campaign_id", table.Header[0])
	assert.Equal(t, "break_even_cpl", table.Header[len(table.Header)-1])

	row := map[string]string{}
	for i, h := range table.Header {
		row[h] = table.Rows[0][i]
	}
	assert.Equal(t, "Auto", row["campaign_name"])
	assert.Equal(t, "250", row["revenue"])
	assert.Equal(t, "150", row["roi"])
	assert.Equal(t, "9", row["lp_sold_leads"])
}

func TestTable_Values(t *testing.T) {
	values := exporting.Table{Header: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}.Values()
	assert.Equal(t, [][]any{{"a"}, {"1"}, {"2"}}, values)
}
