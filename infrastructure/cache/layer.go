package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
	"github.com/vfg2006/crm-dashboard-api/internal/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Layer memoiza resultados caros sobre um Store. Falhas do Store nunca
// chegam a quem chama: leitura com erro é miss, escrita com erro é no-op.
type Layer struct {
	store        Store
	queryTTL     time.Duration
	referenceTTL time.Duration
	sweepAge     time.Duration
	now          func() time.Time
}

type Option func(*Layer)

// WithClock substitui o relógio usado para idade e TTL
func WithClock(now func() time.Time) Option {
	return func(l *Layer) {
		l.now = now
	}
}

func NewLayer(store Store, cfg config.Cache, opts ...Option) *Layer {
	l := &Layer{
		store:        store,
		queryTTL:     cfg.QueryTTL,
		referenceTTL: cfg.ReferenceTTL,
		sweepAge:     cfg.SweepAge,
		now:          time.Now,
	}

	if l.queryTTL <= 0 {
		l.queryTTL = 30 * time.Minute
	}
	if l.referenceTTL <= 0 {
		l.referenceTTL = 24 * time.Hour
	}
	// sweepAge é a retenção de entradas vencidas para o fallback; nunca menor que o TTL
	if l.sweepAge < l.queryTTL {
		l.sweepAge = l.queryTTL
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TTL retorna o tempo de vida do agregado
func (l *Layer) TTL(aggregate Aggregate) time.Duration {
	if aggregate.IsReference() {
		return l.referenceTTL
	}
	return l.queryTTL
}

// Lookup é o resultado bruto de uma leitura
type Lookup struct {
	Payload []byte
	Age     time.Duration
	Found   bool
}

// Get devolve o payload e a idade da entrada; cabe a quem chama comparar com o TTL
func (l *Layer) Get(ctx context.Context, key string) Lookup {
	entry, ok, err := l.store.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: erro na leitura, tratando como miss")
		return Lookup{}
	}
	if !ok {
		return Lookup{}
	}
	return Lookup{Payload: entry.Payload, Age: entry.Age(l.now()), Found: true}
}

// Fresh decodifica em target a entrada ainda dentro do TTL do agregado
func (l *Layer) Fresh(ctx context.Context, aggregate Aggregate, key string, target any) bool {
	lookup := l.Get(ctx, key)
	switch {
	case !lookup.Found:
		telemetry.CacheLookupsTotal.WithLabelValues(aggregate.String(), "miss").Inc()
		return false
	case lookup.Age > l.TTL(aggregate):
		telemetry.CacheLookupsTotal.WithLabelValues(aggregate.String(), "expired").Inc()
		logrus.WithFields(logrus.Fields{
			"key": key,
			"age": lookup.Age.Round(time.Second).String(),
		}).Debug("cache: entrada expirada")
		return false
	}

	if !l.decode(key, lookup.Payload, target) {
		telemetry.CacheLookupsTotal.WithLabelValues(aggregate.String(), "error").Inc()
		return false
	}

	telemetry.CacheLookupsTotal.WithLabelValues(aggregate.String(), "hit").Inc()
	return true
}

// Stale decodifica qualquer entrada existente, independente da idade.
// Usado como último recurso quando o CRM falha.
func (l *Layer) Stale(ctx context.Context, key string, target any) (time.Duration, bool) {
	lookup := l.Get(ctx, key)
	if !lookup.Found || !l.decode(key, lookup.Payload, target) {
		return 0, false
	}
	return lookup.Age, true
}

// Set grava o valor apenas se não houver entrada válida (o primeiro escritor vence)
func (l *Layer) Set(ctx context.Context, aggregate Aggregate, key string, value any) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "error").Inc()
		logrus.WithError(err).WithField("key", key).Warn("cache: erro ao serializar payload")
		return false
	}

	now := l.now()
	written, err := l.store.SetIfAbsent(ctx, key, Entry{Payload: payload, WrittenAt: now}, now.Add(-l.TTL(aggregate)))
	if err != nil {
		telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "error").Inc()
		logrus.WithError(err).WithField("key", key).Warn("cache: erro na escrita, ignorando")
		return false
	}

	if !written {
		telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "kept").Inc()
		logrus.WithField("key", key).Debug("cache: entrada existente mantida")
		return false
	}

	telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "written").Inc()
	return true
}

// Refresh sobrescreve a entrada incondicionalmente (refresh forçado)
func (l *Layer) Refresh(ctx context.Context, aggregate Aggregate, key string, value any) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "error").Inc()
		logrus.WithError(err).WithField("key", key).Warn("cache: erro ao serializar payload")
		return false
	}

	if err := l.store.Put(ctx, key, Entry{Payload: payload, WrittenAt: l.now()}); err != nil {
		telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "error").Inc()
		logrus.WithError(err).WithField("key", key).Warn("cache: erro no refresh forçado, ignorando")
		return false
	}

	telemetry.CacheWritesTotal.WithLabelValues(aggregate.String(), "refreshed").Inc()
	return true
}

// SweepExpired remove as entradas dos prefixos conhecidos mais velhas que a retenção do prefixo.
// Entradas vencidas porém dentro da retenção continuam disponíveis para Stale.
func (l *Layer) SweepExpired(ctx context.Context) (int, error) {
	removed := 0

	for _, aggregate := range QueryAggregates {
		n, err := l.sweepPrefix(ctx, Prefix(aggregate), l.sweepAge)
		removed += n
		if err != nil {
			return removed, err
		}
	}

	n, err := l.sweepPrefix(ctx, Prefix(AggregateReference), max(l.referenceTTL, l.sweepAge))
	removed += n
	if err != nil {
		return removed, err
	}

	n, err = l.sweepPrefix(ctx, SessionPrefix, l.referenceTTL)
	removed += n
	if err != nil {
		return removed, err
	}

	telemetry.CacheEvictionsTotal.WithLabelValues("sweep").Add(float64(removed))
	logrus.WithField("removed", removed).Info("cache: sweep de entradas expiradas concluído")
	return removed, nil
}

func (l *Layer) sweepPrefix(ctx context.Context, prefix string, maxAge time.Duration) (int, error) {
	keys, err := l.store.Keys(ctx, prefix)
	if err != nil {
		return 0, err
	}

	now := l.now()
	expired := make([]string, 0)
	for _, key := range keys {
		entry, ok, err := l.store.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		if entry.Age(now) > maxAge {
			expired = append(expired, key)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}
	if err := l.store.Delete(ctx, expired...); err != nil {
		return 0, err
	}
	return len(expired), nil
}

// FlushAll remove todas as entradas de agregados e referências. Flags de sessão são mantidas.
func (l *Layer) FlushAll(ctx context.Context) (int, error) {
	keys, err := l.store.Keys(ctx, KeyPrefix+":")
	if err != nil {
		return 0, err
	}

	if len(keys) > 0 {
		if err := l.store.Delete(ctx, keys...); err != nil {
			return 0, err
		}
	}

	telemetry.CacheEvictionsTotal.WithLabelValues("flush").Add(float64(len(keys)))
	logrus.WithField("removed", len(keys)).Info("cache: flush completo")
	return len(keys), nil
}

func (l *Layer) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

func (l *Layer) decode(key string, payload []byte, target any) bool {
	if err := json.Unmarshal(payload, target); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: payload inválido, tratando como miss")
		return false
	}
	return true
}
