package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/crm-dashboard-api/pkg/log"
	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionHeader identifica a aba do dashboard entre requisições
const SessionHeader = "X-Dashboard-Session"

// parseFilter monta o filtro a partir da query string. As datas usam o formato yyyy-mm-dd.
func parseFilter(r *http.Request, loc *time.Location) (domain.Filter, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"), loc)
	if err != nil {
		return domain.Filter{}, fmt.Errorf("%w: start_date inválida, use o formato YYYY-MM-DD", domain.ErrInvalidFilter)
	}

	endDate, err := utils.ParseDate(query.Get("end_date"), loc)
	if err != nil {
		return domain.Filter{}, fmt.Errorf("%w: end_date inválida, use o formato YYYY-MM-DD", domain.ErrInvalidFilter)
	}

	includeRemoved, err := parseBool(query.Get("include_removed"))
	if err != nil {
		return domain.Filter{}, fmt.Errorf("%w: include_removed deve ser true ou false", domain.ErrInvalidFilter)
	}

	refresh, err := parseBool(query.Get("refresh"))
	if err != nil {
		return domain.Filter{}, fmt.Errorf("%w: refresh deve ser true ou false", domain.ErrInvalidFilter)
	}

	return domain.Filter{
		DateRange: domain.DateRange{
			Start: startDate,
			End:   endDate,
		},
		Nucleo:         query.Get("nucleo"),
		Loja:           query.Get("loja"),
		Vendedor:       query.Get("vendedor"),
		Arquiteto:      query.Get("arquiteto"),
		Status:         domain.BudgetStage(query.Get("status")),
		IncludeRemoved: includeRemoved,
		ForceRefresh:   refresh,
	}, nil
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func sessionFrom(r *http.Request) string {
	return r.Header.Get(SessionHeader)
}

// writeJSON serializa a resposta; falhas de escrita só podem ser registradas
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// writeResult responde com o resultado ou com o erro classificado
func writeResult(w http.ResponseWriter, r *http.Request, metric string, result any, err error) {
	logger := log.ForContext(r.Context())

	if session := sessionFrom(r); session != "" {
		w.Header().Set(SessionHeader, session)
	}

	if err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"metric": metric,
			"query":  r.URL.RawQuery,
		}).Warn("handler: métrica não pôde ser entregue")
		apiErrors.WriteDomainError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
