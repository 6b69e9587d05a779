package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual; o cache fora do ar não derruba
// o serviço, apenas aparece no corpo
func HealthcheckHandler(store Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		cacheStatus := "ok"
		if err := store.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: cache indisponível")
			cacheStatus = "unavailable"
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"time":  time.Now().Format(time.RFC3339),
			"cache": cacheStatus,
		})
	})
}
