package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/lead-ads-dashboard/internal/config"
)

type HealthcheckResponse struct {
	Status       string          `json:"status"`
	Time         time.Time       `json:"time"`
	Integrations map[string]bool `json:"integrations"`
}

func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status: "ok",
			Time:   now().UTC(),
			Integrations: map[string]bool{
				"meta":       cfg.Meta.AccessToken != "" && cfg.Meta.AdAccountID != "",
				"leadspedia": cfg.LeadspediaEnabled(),
				"sheets":     cfg.Sheets.Configured(),
				"email":      cfg.Alerts.EmailConfigured(),
				"slack":      cfg.Alerts.SlackConfigured(),
				"auth":       cfg.Auth.Enabled(),
			},
		})
	})
}
