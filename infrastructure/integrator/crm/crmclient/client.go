package crmclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client acessa as coleções paginadas do CRM
type Client interface {
	// FetchAll segue o cursor até esgotar a coleção. Qualquer página com falha aborta a chamada.
	FetchAll(ctx context.Context, collection crmdomain.Collection, constraints []crmdomain.Constraint) ([]crmdomain.Record, error)
	// FetchByIDs busca registros em lotes; lotes com falha são ignorados.
	FetchByIDs(ctx context.Context, collection crmdomain.Collection, ids []string) ([]crmdomain.Record, error)
}

type CRMClient struct {
	httpClient       *http.Client
	baseURL          string
	accessToken      string
	pageSize         int
	batchSize        int
	batchConcurrency int
	breaker          *gobreaker.CircuitBreaker
}

// NewClient cria o cliente HTTP do CRM protegido por circuit breaker
func NewClient(cfg *config.Config) Client {
	return newCRMClient(cfg, &http.Client{Timeout: cfg.CRM.RequestTimeout})
}

func newCRMClient(cfg *config.Config, httpClient *http.Client) *CRMClient {
	failures := cfg.CRM.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "crm-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.CRM.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("crm: circuit breaker mudou de estado")
		},
	})

	return &CRMClient{
		httpClient:       httpClient,
		baseURL:          cfg.CRM.URL,
		accessToken:      cfg.CRM.AccessToken,
		pageSize:         cfg.CRM.PageSize,
		batchSize:        cfg.CRM.BatchSize,
		batchConcurrency: cfg.CRM.BatchConcurrency,
		breaker:          breaker,
	}
}
