package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/crm-dashboard-api/pkg/apiErrors"
)

// GetFunnel retorna o funil de orçamentos (mode=closed|open)
func GetFunnel(service analytics.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		mode := domain.FunnelMode(r.URL.Query().Get("mode"))
		result, err := service.Funnel(r.Context(), filter, mode, sessionFrom(r))
		writeResult(w, r, "funnel", result, err)
	})
}

// GetMargin retorna a margem ponderada agrupada por núcleo ou loja (group_by)
func GetMargin(service analytics.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		groupBy := domain.MarginGroupBy(r.URL.Query().Get("group_by"))
		result, err := service.Margin(r.Context(), filter, groupBy, sessionFrom(r))
		writeResult(w, r, "margin", result, err)
	})
}

func GetPerformance(service analytics.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.Performance(r.Context(), filter, sessionFrom(r))
		writeResult(w, r, "performance", result, err)
	})
}

func GetTopClients(service analytics.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.TopClients(r.Context(), filter, sessionFrom(r))
		writeResult(w, r, "top_clients", result, err)
	})
}

func GetTopProducts(service analytics.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.TopProducts(r.Context(), filter, sessionFrom(r))
		writeResult(w, r, "top_products", result, err)
	})
}
