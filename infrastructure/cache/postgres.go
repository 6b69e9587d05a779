package cache

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/database/postgres"
)

const cacheTable = "dashboard_cache"

// PostgresStore persiste as entradas na tabela dashboard_cache
type PostgresStore struct {
	conn postgres.Conn
}

func NewPostgresStore(conn postgres.Conn) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// EnsureSchema cria a tabela e o índice de written_at se ainda não existirem
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	return p.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+cacheTable+` (
			key        TEXT PRIMARY KEY,
			payload    BYTEA NOT NULL,
			written_at TIMESTAMPTZ NOT NULL
		)`); err != nil {
			return fmt.Errorf("erro ao criar a tabela %s: %w", cacheTable, err)
		}

		if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_`+cacheTable+`_written_at ON `+cacheTable+` (written_at)`); err != nil {
			return fmt.Errorf("erro ao criar o índice de %s: %w", cacheTable, err)
		}
		return nil
	})
}

func (p *PostgresStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	query, args, err := squirrel.
		Select("payload", "written_at").
		From(cacheTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return Entry{}, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var entry Entry
	if err := p.conn.QueryRowContext(ctx, query, args...).Scan(&entry.Payload, &entry.WrittenAt); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("erro ao executar a query: %w", err)
	}
	return entry, true, nil
}

// SetIfAbsent usa upsert condicional: a linha existente só é substituída se for anterior a staleBefore
func (p *PostgresStore) SetIfAbsent(ctx context.Context, key string, entry Entry, staleBefore time.Time) (bool, error) {
	query, args, err := squirrel.
		Insert(cacheTable).
		Columns("key", "payload", "written_at").
		Values(key, entry.Payload, entry.WrittenAt.UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, written_at = EXCLUDED.written_at WHERE "+cacheTable+".written_at < ?", staleBefore.UTC()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := p.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao gravar entrada no cache: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	return affected > 0, nil
}

func (p *PostgresStore) Put(ctx context.Context, key string, entry Entry) error {
	query, args, err := squirrel.
		Insert(cacheTable).
		Columns("key", "payload", "written_at").
		Values(key, entry.Payload, entry.WrittenAt.UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, written_at = EXCLUDED.written_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := p.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao sobrescrever entrada no cache: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Delete(cacheTable).
		Where(squirrel.Eq{"key": keys}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := p.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover entradas do cache: %w", err)
	}
	return nil
}

// likeEscaper faz o LIKE casar apenas o prefixo literal
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func keysQuery(prefix string) (string, []any, error) {
	return squirrel.
		Select("key").
		From(cacheTable).
		Where(squirrel.Like{"key": likeEscaper.Replace(prefix) + "%"}).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (p *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := keysQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := p.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return keys, nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

func (p *PostgresStore) Close() error {
	return p.conn.Close()
}
