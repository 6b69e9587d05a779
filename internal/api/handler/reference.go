package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/crm-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/crm-dashboard-api/pkg/log"
)

type referenceResponse struct {
	Collection string `json:"collection"`
	Items      any    `json:"items"`
}

// GetReference retorna uma lista de referência (vendedor, arquiteto, cliente, loja)
func GetReference(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		collection := crmdomain.Collection(httprouter.ParamsFromContext(r.Context()).ByName("collection"))
		if collection == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Coleção não especificada", nil)
			return
		}

		refresh, err := parseBool(r.URL.Query().Get("refresh"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "refresh deve ser true ou false", nil)
			return
		}

		items, err := service.Reference(r.Context(), collection, refresh)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("collection", collection).Warn("reference: lista indisponível")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, referenceResponse{Collection: collection.String(), Items: items})
	})
}
