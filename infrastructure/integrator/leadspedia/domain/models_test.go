package lpdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPayloadExtraction(t *testing.T) {
	items := []any{map[string]any{"id": "1"}, "ignorado", map[string]any{"id": "2"}}

	assert.Len(t, ListData(map[string]any{"response": map[string]any{"data": items}}), 2)
	assert.Len(t, ListData(map[string]any{"data": items}), 2)
	assert.Nil(t, ListData([]any{}))

	assert.Len(t, ReportData(items, "data"), 2)
	assert.Len(t, ReportData(map[string]any{"data": []any{}, "verticals": items}, "data", "response", "verticals"), 2)
	assert.Len(t, ReportData(map[string]any{"response": map[string]any{"data": items}}, "data", "response"), 2)

	assert.Len(t, PageData(map[string]any{"response": map[string]any{"data": items}}), 2)
	assert.Len(t, PageData(map[string]any{"response": items}), 2)
	assert.Len(t, PageData(map[string]any{"data": items}), 2)
	assert.Empty(t, PageData(map[string]any{}))
}

func TestParseContract(t *testing.T) {
	c := ParseContract(map[string]any{
		"contractID":   float64(5),
		"contractName": "Contrato",
		"price":        "12.5",
		"dailyCap":     "100",
		"leadsToday":   float64(7),
	})

	assert.Equal(t, 12.5, c.Price)
	assert.Equal(t, "active", c.Status)
	if assert.NotNil(t, c.DailyCap) {
		assert.Equal(t, 100, *c.DailyCap)
	}
	if assert.NotNil(t, c.LeadsToday) {
		assert.Equal(t, 7, *c.LeadsToday)
	}
}

func TestLeadQuery(t *testing.T) {
	q := LeadQuery{
		Since:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AffiliateID: "12",
	}

	assert.Equal(t, map[string]string{"fromDate": "2024-01-01", "toDate": "2024-01-31", "affiliateID": "12"}, q.Params())

	material := q.KeyMaterial()
	assert.Equal(t, "leadspedia_leads", material["source"])
	assert.Nil(t, material["campaign_id"])
	assert.Equal(t, "12", *material["affiliate_id"].(*string))
}

func TestValues(t *testing.T) {
	assert.Equal(t, "12", AsString(float64(12)))
	assert.Equal(t, "12.5", AsString(12.5))
	assert.Equal(t, "True", AsString(true))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(float64(0)))
	assert.True(t, Truthy("0"))
	assert.Equal(t, 0.0, SafeFloat("abc"))
	assert.Nil(t, OptionalInt(""))
	assert.Nil(t, ParseDateTime("15/01/2024"))
	assert.NotNil(t, ParseDateTime("2024-01-15T10:00:00Z"))
}
