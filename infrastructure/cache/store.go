package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/crm-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
)

// Entry é o valor persistido: o payload serializado e o instante da escrita
type Entry struct {
	Payload   []byte
	WrittenAt time.Time
}

// Age retorna a idade da entrada em relação a now
func (e Entry) Age(now time.Time) time.Duration {
	if e.WrittenAt.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return now.Sub(e.WrittenAt)
}

// Store é o armazenamento chave/valor injetado na camada de cache.
// Operações sobre uma única chave são atômicas no backend.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	// SetIfAbsent grava somente se a chave não existe ou se a entrada atual
	// foi escrita antes de staleBefore. Retorna true quando gravou.
	SetIfAbsent(ctx context.Context, key string, entry Entry, staleBefore time.Time) (bool, error)
	Put(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// NewStore cria o backend configurado em CACHE_BACKEND
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Cache.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(ctx, cfg.Redis.URL)
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("cache: erro ao conectar no postgres: %w", err)
		}
		store := NewPostgresStore(conn)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("cache: backend desconhecido: %s", cfg.Cache.Backend)
	}
}
