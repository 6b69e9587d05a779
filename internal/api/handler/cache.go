package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/vfg2006/crm-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/crm-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/crm-dashboard-api/pkg/log"
	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

// CacheMaintainer é a parte do cache exposta pela API
type CacheMaintainer interface {
	HandleNavigation(ctx context.Context, sessionID string, navType cache.NavigationType) (cache.NavigationResult, error)
	SweepExpired(ctx context.Context) (int, error)
	FlushAll(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type navigationRequest struct {
	Type cache.NavigationType `json:"type"`
}

type navigationResponse struct {
	SessionID string `json:"session_id"`
	cache.NavigationResult
}

// PostNavigation recebe o tipo de navegação da página. Reload esvazia o cache.
// Sem sessão no header, uma nova é emitida e devolvida.
func PostNavigation(layer CacheMaintainer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req navigationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		sessionID := sessionFrom(r)
		if sessionID == "" {
			generated, err := utils.GenerateSessionID()
			if err != nil {
				logger.WithError(err).Error("navigation: erro ao gerar sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar sessão", nil)
				return
			}
			sessionID = generated
		}

		result, err := layer.HandleNavigation(r.Context(), sessionID, req.Type)
		if err != nil {
			logger.WithError(err).Error("navigation: erro ao esvaziar o cache")
			apiErrors.WriteError(w, apiErrors.ErrCacheOperation, "Erro ao esvaziar o cache", nil)
			return
		}

		w.Header().Set(SessionHeader, sessionID)
		writeJSON(w, r, http.StatusOK, navigationResponse{SessionID: sessionID, NavigationResult: result})
	})
}

// SweepCache remove as entradas expiradas sob demanda
func SweepCache(layer CacheMaintainer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed, err := layer.SweepExpired(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cache: erro no sweep manual")
			apiErrors.WriteError(w, apiErrors.ErrCacheOperation, "Erro ao remover entradas expiradas", map[string]int{"removed": removed})
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]int{"removed": removed})
	})
}

func FlushCache(layer CacheMaintainer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed, err := layer.FlushAll(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cache: erro no flush manual")
			apiErrors.WriteError(w, apiErrors.ErrCacheOperation, "Erro ao esvaziar o cache", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]int{"removed": removed})
	})
}
