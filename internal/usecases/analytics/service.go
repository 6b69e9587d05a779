package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/telemetry"
	"golang.org/x/sync/singleflight"
)

// Service orquestra busca, join, cache e cálculo das métricas
type Service struct {
	crm            crm.CRMIntegrator
	cache          *cache.Layer
	loc            *time.Location
	now            func() time.Time
	guard          *generationGuard
	flight         singleflight.Group
	computeTimeout time.Duration
}

// Prazo máximo de um cálculo compartilhado entre requisições
const defaultComputeTimeout = 2 * time.Minute

type Option func(*Service)

// WithComputeTimeout limita o tempo de um cálculo compartilhado entre requisições
func WithComputeTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.computeTimeout = d
		}
	}
}

// WithClock substitui o relógio usado em GeneratedAt e no controle de gerações
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService cria o serviço de métricas
func NewService(cfg *config.Config, integrator crm.CRMIntegrator, layer *cache.Layer, opts ...Option) *Service {
	s := &Service{
		crm:            integrator,
		cache:          layer,
		loc:            cfg.Location(),
		now:            time.Now,
		computeTimeout: defaultComputeTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}
	s.guard = newGenerationGuard(s.now)
	return s
}

func (s *Service) Funnel(ctx context.Context, filter domain.Filter, mode domain.FunnelMode, sessionID string) (*domain.FunnelResult, error) {
	if mode == "" {
		mode = domain.FunnelClosed
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: modo de funil desconhecido: %s", domain.ErrInvalidFilter, mode)
	}

	return runMetric(ctx, s, metricCall[domain.FunnelResult]{
		aggregate: cache.AggregateFunnel,
		variant:   string(mode),
		filter:    filter,
		mode:      mode,
		sessionID: sessionID,
		compute: func(ctx context.Context, filter domain.Filter) (*domain.FunnelResult, bool, error) {
			ds, err := s.loadDataset(ctx, filter, loadOptions{mode: mode})
			if err != nil {
				return nil, false, err
			}
			return ComputeFunnel(ds.Budgets, mode), ds.Degraded, nil
		},
	})
}

func (s *Service) Margin(ctx context.Context, filter domain.Filter, groupBy domain.MarginGroupBy, sessionID string) (*domain.MarginResult, error) {
	if groupBy == "" {
		groupBy = domain.GroupByNucleo
	}
	if !groupBy.Valid() {
		return nil, fmt.Errorf("%w: agrupamento desconhecido: %s", domain.ErrInvalidFilter, groupBy)
	}

	references := []crmdomain.Collection{}
	if groupBy == domain.GroupByLoja {
		references = append(references, crmdomain.CollectionStore)
	}

	return runMetric(ctx, s, metricCall[domain.MarginResult]{
		aggregate: cache.AggregateMargin,
		variant:   string(groupBy),
		filter:    filter,
		mode:      domain.FunnelClosed,
		sessionID: sessionID,
		compute: func(ctx context.Context, filter domain.Filter) (*domain.MarginResult, bool, error) {
			ds, err := s.loadDataset(ctx, filter, loadOptions{
				mode:       domain.FunnelClosed,
				lineItems:  true,
				references: references,
			})
			if err != nil {
				return nil, false, err
			}
			return ComputeMargin(ds, groupBy), ds.Degraded, nil
		},
	})
}

func (s *Service) Performance(ctx context.Context, filter domain.Filter, sessionID string) (*domain.PerformanceResult, error) {
	return runMetric(ctx, s, metricCall[domain.PerformanceResult]{
		aggregate: cache.AggregatePerformance,
		filter:    filter,
		mode:      domain.FunnelClosed,
		sessionID: sessionID,
		compute: func(ctx context.Context, filter domain.Filter) (*domain.PerformanceResult, bool, error) {
			ds, err := s.loadDataset(ctx, filter, loadOptions{
				mode:       domain.FunnelClosed,
				references: []crmdomain.Collection{crmdomain.CollectionSeller, crmdomain.CollectionArchitect},
			})
			if err != nil {
				return nil, false, err
			}
			return ComputePerformance(ds), ds.Degraded, nil
		},
	})
}

func (s *Service) TopClients(ctx context.Context, filter domain.Filter, sessionID string) (*domain.TopClientsResult, error) {
	return runMetric(ctx, s, metricCall[domain.TopClientsResult]{
		aggregate: cache.AggregateTopClients,
		filter:    filter,
		mode:      domain.FunnelClosed,
		sessionID: sessionID,
		compute: func(ctx context.Context, filter domain.Filter) (*domain.TopClientsResult, bool, error) {
			ds, err := s.loadDataset(ctx, filter, loadOptions{
				mode:       domain.FunnelClosed,
				references: []crmdomain.Collection{crmdomain.CollectionClient},
			})
			if err != nil {
				return nil, false, err
			}
			return ComputeTopClients(ds), ds.Degraded, nil
		},
	})
}

func (s *Service) TopProducts(ctx context.Context, filter domain.Filter, sessionID string) (*domain.TopProductsResult, error) {
	return runMetric(ctx, s, metricCall[domain.TopProductsResult]{
		aggregate: cache.AggregateTopProducts,
		filter:    filter,
		mode:      domain.FunnelClosed,
		sessionID: sessionID,
		compute: func(ctx context.Context, filter domain.Filter) (*domain.TopProductsResult, bool, error) {
			ds, err := s.loadDataset(ctx, filter, loadOptions{mode: domain.FunnelClosed, lineItems: true})
			if err != nil {
				return nil, false, err
			}
			return ComputeTopProducts(ds), ds.Degraded, nil
		},
	})
}

// Reference lê a lista do cache (TTL longo); em falha do CRM usa a entrada vencida, se houver
func (s *Service) Reference(ctx context.Context, collection crmdomain.Collection, forceRefresh bool) ([]domain.ReferenceItem, error) {
	if !collection.IsReference() {
		return nil, fmt.Errorf("%w: coleção sem lista de referência: %s", domain.ErrInvalidFilter, collection)
	}

	key := cache.ReferenceKey(collection.String())

	var items []domain.ReferenceItem
	if !forceRefresh && s.cache.Fresh(ctx, cache.AggregateReference, key, &items) {
		return items, nil
	}

	flightKey := key
	if forceRefresh {
		flightKey += ":refresh"
	}

	v, err := s.share(ctx, flightKey, func(flightCtx context.Context) (any, error) {
		fetched, err := s.crm.ListReference(flightCtx, collection)
		if err != nil {
			return nil, err
		}
		if forceRefresh {
			s.cache.Refresh(flightCtx, cache.AggregateReference, key, fetched)
		} else {
			s.cache.Set(flightCtx, cache.AggregateReference, key, fetched)
		}
		return fetched, nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if age, ok := s.cache.Stale(ctx, key, &items); ok {
			telemetry.MetricFallbacksTotal.WithLabelValues(cache.AggregateReference.String(), "stale").Inc()
			logrus.WithError(err).WithFields(logrus.Fields{
				"collection": collection,
				"age":        age.Round(time.Second).String(),
			}).Warn("analytics: CRM indisponível, usando lista de referência vencida")
			return items, nil
		}
		return nil, err
	}

	return v.([]domain.ReferenceItem), nil
}

// WarmReferences força a recarga de todas as listas de referência
func (s *Service) WarmReferences(ctx context.Context) error {
	var errs []error
	for _, collection := range crmdomain.ReferenceCollections {
		if _, err := s.Reference(ctx, collection, true); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", collection, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) PruneSessions(maxIdle time.Duration) int {
	return s.guard.prune(maxIdle)
}

type metricCall[T any] struct {
	aggregate cache.Aggregate
	variant   string
	filter    domain.Filter
	mode      domain.FunnelMode
	sessionID string
	compute   func(ctx context.Context, filter domain.Filter) (*T, bool, error)
}

type metricResult[T any] interface {
	*T
	Metadata() *domain.ResultMeta
}

// runMetric aplica o fluxo comum: cache válido, cálculo, escrita no cache,
// fallback para entrada vencida e descarte de respostas superadas.
func runMetric[T any, P metricResult[T]](ctx context.Context, s *Service, call metricCall[T]) (*T, error) {
	filter := call.filter.Normalize(s.loc)
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	keyFilter := filter
	if call.mode == domain.FunnelOpen {
		// o início do período não altera o funil aberto
		keyFilter.DateRange.Start = time.Time{}
	}
	key := cache.Key(call.aggregate, call.variant, keyFilter)

	panel := call.aggregate.String() + ":" + call.variant
	token := s.guard.begin(call.sessionID, panel)

	deliver := func(result *T) (*T, error) {
		if !s.guard.isCurrent(call.sessionID, panel, token) {
			logrus.WithFields(logrus.Fields{
				"session":   call.sessionID,
				"aggregate": call.aggregate,
			}).Debug("analytics: resposta superada descartada")
			return nil, domain.ErrSuperseded
		}
		return result, nil
	}

	if !filter.ForceRefresh {
		var cached T
		if s.cache.Fresh(ctx, call.aggregate, key, &cached) {
			return deliver(&cached)
		}
	}

	flightKey := key
	if filter.ForceRefresh {
		flightKey += ":refresh"
	}

	v, err := s.share(ctx, flightKey, func(flightCtx context.Context) (any, error) {
		result, degraded, err := call.compute(flightCtx, filter)
		if err != nil {
			return nil, err
		}

		meta := P(result).Metadata()
		meta.CacheKey = key
		meta.GeneratedAt = s.now()
		meta.Degraded = degraded

		switch {
		case degraded:
			// resultado degradado não vai para o cache
		case filter.ForceRefresh:
			s.cache.Refresh(flightCtx, call.aggregate, key, result)
		default:
			s.cache.Set(flightCtx, call.aggregate, key, result)
		}
		return result, nil
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return staleFallback[T, P](ctx, s, call, key, err, deliver)
	}

	result := v.(*T)
	if P(result).Metadata().Degraded {
		telemetry.MetricFallbacksTotal.WithLabelValues(call.aggregate.String(), "degraded").Inc()
	}
	return deliver(result)
}

// share executa fn uma única vez por chave entre requisições concorrentes.
// fn roda num contexto desligado do cancelamento de quem chegou primeiro, limitado
// por computeTimeout; cada chamador só espera enquanto o próprio contexto estiver vivo.
func (s *Service) share(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := s.flight.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.computeTimeout)
		defer cancel()
		return fn(flightCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			logrus.WithField("key", key).Debug("analytics: cálculo compartilhado com requisição concorrente")
		}
		return res.Val, res.Err
	}
}

func staleFallback[T any, P metricResult[T]](
	ctx context.Context,
	s *Service,
	call metricCall[T],
	key string,
	cause error,
	deliver func(*T) (*T, error),
) (*T, error) {
	var stale T
	if age, ok := s.cache.Stale(ctx, key, &stale); ok {
		P(&stale).Metadata().Stale = true
		telemetry.MetricFallbacksTotal.WithLabelValues(call.aggregate.String(), "stale").Inc()
		logrus.WithError(cause).WithFields(logrus.Fields{
			"aggregate": call.aggregate,
			"key":       key,
			"age":       age.Round(time.Second).String(),
		}).Warn("analytics: falha ao calcular métrica, servindo cache vencido")
		return deliver(&stale)
	}

	telemetry.MetricFallbacksTotal.WithLabelValues(call.aggregate.String(), "error").Inc()
	logrus.WithError(cause).WithField("aggregate", call.aggregate).Error("analytics: métrica indisponível, sem cache para fallback")
	return nil, fmt.Errorf("%w: %s: %w", domain.ErrNoData, call.aggregate, cause)
}
