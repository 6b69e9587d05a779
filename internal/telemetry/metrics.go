package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Requisições de página ao CRM por coleção e resultado (ok, error, breaker_open)
	CRMRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_crm_requests_total",
		Help: "Total de requisições de página feitas ao CRM",
	}, []string{"collection", "outcome"})

	CRMRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crm_dashboard_crm_request_seconds",
		Help:    "Latência das requisições de página ao CRM",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	CRMBatchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_crm_batch_failures_total",
		Help: "Lotes de busca por ID ignorados por falha",
	}, []string{"collection"})

	// Leituras do cache por agregado e resultado (hit, miss, expired, error)
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_cache_lookups_total",
		Help: "Total de consultas ao cache de agregados",
	}, []string{"aggregate", "result"})

	CacheWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_cache_writes_total",
		Help: "Escritas no cache por resultado (written, kept, error)",
	}, []string{"aggregate", "result"})

	CacheEvictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_cache_evictions_total",
		Help: "Entradas removidas por sweep ou flush",
	}, []string{"reason"})

	MetricFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_dashboard_metric_fallbacks_total",
		Help: "Métricas servidas via fallback (stale, degraded, error)",
	}, []string{"metric", "kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crm_dashboard_http_request_seconds",
		Help:    "Latência das requisições HTTP por rota e status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
