package handler

import (
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/handler/router"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/middleware"
)

var limitBody = []func(http.Handler) http.Handler{middleware.LimitBody(middleware.DefaultMaxBody)}

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
	}
}

func UI() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: limitBody,
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: Session(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/insights/action-types",
			Method:  http.MethodGet,
			Handler: GetActionTypes(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaigns(service),
		},
		{
			Path:    "/v1/adsets",
			Method:  http.MethodGet,
			Handler: GetAdsets(service),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: GetAds(service),
		},
		{
			Path:    "/v1/combined",
			Method:  http.MethodGet,
			Handler: GetCombined(service),
		},
		{
			Path:    "/v1/problem-areas",
			Method:  http.MethodGet,
			Handler: GetProblemAreas(service),
		},
	}
}

func Leadspedia(service reporting.LeadReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leadspedia/leads",
			Method:  http.MethodGet,
			Handler: GetLeads(service),
		},
		{
			Path:    "/v1/leadspedia/log",
			Method:  http.MethodGet,
			Handler: GetLeadLog(service),
		},
		{
			Path:    "/v1/leadspedia/stats",
			Method:  http.MethodGet,
			Handler: GetLeadStats(service),
		},
		{
			Path:    "/v1/leadspedia/buyers",
			Method:  http.MethodGet,
			Handler: GetBuyers(service),
		},
		{
			Path:    "/v1/leadspedia/contracts",
			Method:  http.MethodGet,
			Handler: GetContracts(service),
		},
		{
			Path:    "/v1/leadspedia/advertisers",
			Method:  http.MethodGet,
			Handler: GetAdvertisers(service),
		},
		{
			Path:    "/v1/leadspedia/verticals",
			Method:  http.MethodGet,
			Handler: GetVerticals(service),
		},
	}
}

func Analysis(service analysis.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodGet,
			Handler: Analyze(service),
		},
		{
			Path:    "/v1/analysis/llm",
			Method:  http.MethodGet,
			Handler: AnalysisLLMExport(service),
		},
	}
}

func Alerts(service alerting.Alerter, stream http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: ListAlerts(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodDelete,
			Handler: ClearAlerts(service),
		},
		{
			Path:    "/v1/alerts/check",
			Method:  http.MethodPost,
			Handler: RunAlertCheck(service),
		},
		{
			Path:    "/v1/alerts/ack/:id",
			Method:  http.MethodPost,
			Handler: AcknowledgeAlert(service),
		},
		{
			Path:    "/ws/alerts",
			Method:  http.MethodGet,
			Handler: stream,
		},
	}
}

func Mappings(repo repository.CampaignMappingRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/mappings",
			Method:  http.MethodGet,
			Handler: ListMappings(repo),
		},
		{
			Path:        "/v1/mappings",
			Method:      http.MethodPost,
			Handler:     SaveMapping(repo),
			Middlewares: limitBody,
		},
		{
			Path:    "/v1/mappings/campaign/:campaign_id",
			Method:  http.MethodDelete,
			Handler: RemoveMapping(repo),
		},
		{
			Path:        "/v1/mappings/affiliate",
			Method:      http.MethodPut,
			Handler:     SetAffiliate(repo),
			Middlewares: limitBody,
		},
		{
			Path:        "/v1/mappings/defaults",
			Method:      http.MethodPut,
			Handler:     SetMappingDefaults(repo),
			Middlewares: limitBody,
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exports/insights.csv",
			Method:  http.MethodGet,
			Handler: ExportInsightsCSV(service),
		},
		{
			Path:    "/v1/exports/combined.csv",
			Method:  http.MethodGet,
			Handler: ExportCombinedCSV(service),
		},
		{
			Path:    "/v1/exports/llm",
			Method:  http.MethodGet,
			Handler: ExportLLMMarkdown(service),
		},
		{
			Path:    "/v1/exports/sheets",
			Method:  http.MethodPost,
			Handler: PushSheets(service),
		},
	}
}

func Cache(cache repository.CacheRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/stats",
			Method:  http.MethodGet,
			Handler: GetCacheStats(cache),
		},
	}
}

func CronJobs(manager scheduler.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(manager),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(manager),
		},
	}
}
