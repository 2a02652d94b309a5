package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

const (
	AlertSourceDashboard = "dashboard"
	AlertSourceHistory   = "history"

	defaultHistoryLimit = 100
)

type AlertsResponse struct {
	Source   string         `json:"source"`
	Channels []string       `json:"channels"`
	Counts   map[string]int `json:"counts"`
	Alerts   []domain.Alert `json:"alerts"`
}

// filterAlerts aplica severity e show_acknowledged sobre a lista já carregada
func filterAlerts(alerts []domain.Alert, severity domain.AlertSeverity, showAcknowledged bool) []domain.Alert {
	out := []domain.Alert{}
	for _, a := range alerts {
		if severity != "" && a.Severity != severity {
			continue
		}
		if a.Acknowledged && !showAcknowledged {
			continue
		}
		out = append(out, a)
	}
	return out
}

func ListAlerts(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		source := q.Get("source")
		if source == "" {
			source = AlertSourceDashboard
		}

		severity := domain.AlertSeverity(q.Get("severity"))
		if severity != "" && !severity.IsValid() {
			writeBadRequest(w, r, fmt.Errorf("severidade desconhecida %q (use info, warning ou critical)", severity))
			return
		}

		var alerts []domain.Alert
		switch source {
		case AlertSourceDashboard:
			if dashboard := service.Dashboard(); dashboard != nil {
				alerts = dashboard.Alerts()
			}
		case AlertSourceHistory:
			limit, err := parseInt(q, "limit", defaultHistoryLimit)
			if err != nil {
				writeBadRequest(w, r, err)
				return
			}
			if alerts, err = service.History(r.Context(), limit); err != nil {
				writeServiceError(w, r, err, "alertas: falha ao ler o histórico")
				return
			}
		default:
			writeBadRequest(w, r, fmt.Errorf("origem desconhecida %q (use dashboard ou history)", source))
			return
		}

		filtered := filterAlerts(alerts, severity, parseBool(q, "show_acknowledged", false))
		writeJSON(w, r, http.StatusOK, AlertsResponse{
			Source:   source,
			Channels: service.Channels(),
			Counts: map[string]int{
				string(domain.AlertSeverityCritical): domain.CountBySeverity(filtered, domain.AlertSeverityCritical),
				string(domain.AlertSeverityWarning):  domain.CountBySeverity(filtered, domain.AlertSeverityWarning),
				string(domain.AlertSeverityInfo):     domain.CountBySeverity(filtered, domain.AlertSeverityInfo),
			},
			Alerts: filtered,
		})
	})
}

func AcknowledgeAlert(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.Acknowledge(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "alertas: falha ao reconhecer alerta")
			return
		}
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Alerta não encontrado", map[string]string{"id": id})
			return
		}

		log.ForContext(r.Context()).WithField("alert_id", id).Info("alertas: alerta reconhecido")
		writeJSON(w, r, http.StatusOK, map[string]any{"id": id, "acknowledged": true})
	})
}

// RunAlertCheck roda o monitor na hora, fora do agendamento
func RunAlertCheck(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.RunCheck(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "alertas: falha na verificação manual")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"checked_rows": result.CheckedRows,
			"triggered":    result.Triggered,
			"suppressed":   result.Suppressed,
		}).Info("alertas: verificação manual concluída")

		writeJSON(w, r, http.StatusOK, result)
	})
}

// ClearAlerts limpa apenas o painel; o histórico continua no cache
func ClearAlerts(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dashboard := service.Dashboard(); dashboard != nil {
			dashboard.Clear()
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
