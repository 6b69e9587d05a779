package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/crm-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics"
)

func Healthcheck(store Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Metrics(service analytics.Analyzer, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnel(service, loc),
		},
		{
			Path:    "/v1/metrics/margin",
			Method:  http.MethodGet,
			Handler: GetMargin(service, loc),
		},
		{
			Path:    "/v1/metrics/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service, loc),
		},
		{
			Path:    "/v1/metrics/top-clients",
			Method:  http.MethodGet,
			Handler: GetTopClients(service, loc),
		},
		{
			Path:    "/v1/metrics/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service, loc),
		},
	}
}

func References(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reference/:collection",
			Method:  http.MethodGet,
			Handler: GetReference(service),
		},
	}
}

func Cache(layer CacheMaintainer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session/navigation",
			Method:  http.MethodPost,
			Handler: PostNavigation(layer),
		},
		{
			Path:    "/v1/cache/sweep",
			Method:  http.MethodPost,
			Handler: SweepCache(layer),
		},
		{
			Path:    "/v1/cache",
			Method:  http.MethodDelete,
			Handler: FlushCache(layer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
