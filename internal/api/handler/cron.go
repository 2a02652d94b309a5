package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

type CronRunResponse struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Started map[string]bool `json:"started"`
}

// RunCronJob executa manualmente uma cron job específica, ou todas com "all"
func RunCronJob(manager scheduler.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started, err := manager.TriggerManual(cronType)
		if err != nil {
			apiErrors.WriteError(w, errorCode(err), err.Error(), map[string]any{
				"accepted": append(manager.Names(), scheduler.JobAll),
			})
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, CronRunResponse{
			Message: "Cron job iniciada com sucesso",
			Type:    cronType,
			Started: started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(manager scheduler.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, manager.Status())
	}
}
