package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

func cplPtr(v float64) *float64 {
	return &v
}

func TestConfidence(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name     string
		spend    float64
		leads    int
		expected ConfidenceLevel
	}{
		{name: "Gasto e leads altos", spend: 500, leads: 30, expected: ConfidenceHigh},
		{name: "Gasto alto mas poucos leads", spend: 900, leads: 20, expected: ConfidenceMedium},
		{name: "Nível médio exato", spend: 250, leads: 15, expected: ConfidenceMedium},
		{name: "Leads altos mas gasto baixo", spend: 100, leads: 40, expected: ConfidenceLow},
		{name: "Sem dados", spend: 0, leads: 0, expected: ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Confidence(tt.spend, tt.leads, th))
		})
	}
}

func TestRecommend(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name       string
		confidence ConfidenceLevel
		cpl        *float64
		expected   Action
	}{
		{name: "CPL dentro da meta", confidence: ConfidenceHigh, cpl: cplPtr(30), expected: ActionScale},
		{name: "CPL aceitável", confidence: ConfidenceHigh, cpl: cplPtr(45), expected: ActionMaintain},
		{name: "CPL acima do aceitável", confidence: ConfidenceHigh, cpl: cplPtr(45.01), expected: ActionKill},
		{name: "Alta confiança sem CPL", confidence: ConfidenceHigh, cpl: nil, expected: ActionNeedsData},
		{name: "Confiança média nunca recomenda", confidence: ConfidenceMedium, cpl: cplPtr(10), expected: ActionNeedsData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Recommend(tt.confidence, tt.cpl, th)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestDisplayLabels(t *testing.T) {
	assert.Equal(t, "SCALE ↑", ActionScale.Display())
	assert.Equal(t, "NEEDS DATA", ActionNeedsData.Display())
	assert.Equal(t, "UNKNOWN", Action("x").Display())
	assert.Equal(t, "🟢", ConfidenceHigh.Emoji())
	assert.Equal(t, "⚪", ConfidenceLevel("x").Emoji())
	assert.Equal(t, "directional", ConfidenceMedium.Label())
}

func TestRequiredSampleSize(t *testing.T) {
	t.Run("Faltam leads com CPL conhecido", func(t *testing.T) {
		s := RequiredSampleSize(20, 50, cplPtr(12.5))
		assert.Equal(t, 30, s.LeadsNeeded)
		require.NotNil(t, s.SpendNeeded)
		assert.Equal(t, 375.0, *s.SpendNeeded)
		assert.Equal(t, 40.0, s.ProgressPct)
	})

	t.Run("Meta já atingida", func(t *testing.T) {
		s := RequiredSampleSize(80, 50, cplPtr(10))
		assert.Equal(t, 0, s.LeadsNeeded)
		assert.Nil(t, s.SpendNeeded)
		assert.Equal(t, 100.0, s.ProgressPct)
	})

	t.Run("Meta zero", func(t *testing.T) {
		s := RequiredSampleSize(5, 0, nil)
		assert.Equal(t, 0.0, s.ProgressPct)
	})
}

func TestAnnotateConfidence(t *testing.T) {
	rows := []domain.InsightRow{
		{AdName: "Forte", Spend: 600, Leads: 40, CPL: cplPtr(15)},
		{AdName: "Fraco", Spend: 50, Leads: 2, CPL: cplPtr(25)},
	}

	scored := AnnotateConfidence(rows, DefaultThresholds(), DefaultTargetLeads)

	require.Len(t, scored, 2)
	assert.Equal(t, ConfidenceHigh, scored[0].Confidence)
	assert.Equal(t, ActionScale, scored[0].Action)
	assert.Equal(t, "SCALE ↑", scored[0].ActionDisplay)
	assert.Equal(t, 10, scored[0].LeadsNeeded)
	assert.Equal(t, "Forte", scored[0].AdName)

	assert.Equal(t, ConfidenceLow, scored[1].Confidence)
	assert.Equal(t, "🔴", scored[1].ConfidenceEmoji)
	assert.Equal(t, ActionNeedsData, scored[1].Action)
	require.NotNil(t, scored[1].SpendNeeded)
	assert.Equal(t, 1200.0, *scored[1].SpendNeeded)
}
