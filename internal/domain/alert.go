package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// IsValid indica se a severidade é conhecida
func (s AlertSeverity) IsValid() bool {
	switch s {
	case AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical:
		return true
	}
	return false
}

type AlertType string

const (
	AlertTypeUnsoldLead     AlertType = "unsold_lead"
	AlertTypeNegativeMargin AlertType = "negative_margin"
	AlertTypeLowSellRate    AlertType = "low_sell_rate"
	AlertTypeLowROI         AlertType = "low_roi"
	AlertTypeHighRejection  AlertType = "high_rejection"
	AlertTypeRevenueDrop    AlertType = "revenue_drop"
	AlertTypeSystemError    AlertType = "system_error"
)

// Alert é um alerta disparado pelo monitor de campanhas
type Alert struct {
	ID             string         `json:"id" yaml:"id"`
	Type           AlertType      `json:"alert_type" yaml:"alert_type"`
	Severity       AlertSeverity  `json:"severity" yaml:"severity"`
	Title          string         `json:"title" yaml:"title"`
	Message        string         `json:"message" yaml:"message"`
	Timestamp      time.Time      `json:"timestamp" yaml:"timestamp"`
	CampaignID     string         `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	CampaignName   string         `json:"campaign_name,omitempty" yaml:"campaign_name,omitempty"`
	AdID           string         `json:"ad_id,omitempty" yaml:"ad_id,omitempty"`
	AdName         string         `json:"ad_name,omitempty" yaml:"ad_name,omitempty"`
	Vertical       string         `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	MetricValue    *float64       `json:"metric_value" yaml:"metric_value"`
	ThresholdValue *float64       `json:"threshold_value" yaml:"threshold_value"`
	Acknowledged   bool           `json:"acknowledged" yaml:"acknowledged"`
	AcknowledgedAt *time.Time     `json:"acknowledged_at" yaml:"acknowledged_at"`
	Metadata       map[string]any `json:"metadata" yaml:"metadata"`
}

// AlertID é determinístico dentro da mesma hora, o que permite deduplicar alertas repetidos
func AlertID(alertType AlertType, identifier string, at time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", alertType, identifier, at.Format("2006010215"))))
	return hex.EncodeToString(sum[:])[:16]
}

// CountBySeverity conta os alertas de uma severidade
func CountBySeverity(alerts []Alert, severity AlertSeverity) int {
	n := 0
	for _, a := range alerts {
		if a.Severity == severity {
			n++
		}
	}
	return n
}

// OrDefault retorna fallback quando s é vazio
func OrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
