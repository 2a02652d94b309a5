package config

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// AlertThresholds define quando uma métrica vira alerta
type AlertThresholds struct {
	MinSellRate           float64 `json:"min_sell_rate"`
	MinROI                float64 `json:"min_roi"`
	MaxUnsoldTimeMinutes  int     `json:"max_unsold_time_minutes"`
	AlertOnNegativeMargin bool    `json:"alert_on_negative_margin"`
}

// DefaultAlertThresholds são os limites usados quando nada é configurado
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		MinSellRate:           95,
		MinROI:                20,
		MaxUnsoldTimeMinutes:  30,
		AlertOnNegativeMargin: true,
	}
}

func thresholdsFromMap(m map[string]any) AlertThresholds {
	t := DefaultAlertThresholds()
	t.MinSellRate = anyToFloat(m["min_sell_rate"], t.MinSellRate)
	t.MinROI = anyToFloat(m["min_roi"], t.MinROI)
	t.MaxUnsoldTimeMinutes = int(anyToFloat(m["max_unsold_time_minutes"], float64(t.MaxUnsoldTimeMinutes)))
	if v, ok := m["alert_on_negative_margin"]; ok {
		t.AlertOnNegativeMargin = anyToBool(v)
	}
	return t
}

// parseAlertThresholds lê ALERT_THRESHOLDS no formato {"default": {...}, "<vertical>": {...}}
func parseAlertThresholds(raw string) (AlertThresholds, map[string]AlertThresholds) {
	byVertical := make(map[string]AlertThresholds)
	if strings.TrimSpace(raw) == "" {
		return DefaultAlertThresholds(), byVertical
	}

	var entries map[string]jsoniter.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logrus.WithError(err).Warn("ALERT_THRESHOLDS não é um JSON válido, usando limites padrão")
		return DefaultAlertThresholds(), byVertical
	}

	defaults := DefaultAlertThresholds()
	for key, data := range entries {
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			continue
		}
		if key == "default" {
			defaults = thresholdsFromMap(fields)
			continue
		}
		byVertical[key] = thresholdsFromMap(fields)
	}

	return defaults, byVertical
}

func anyToFloat(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func anyToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

func anyToBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return ParseBool(b, false)
	}
	return false
}
