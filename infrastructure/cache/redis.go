package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	timestampSuffix = "_timestamp"
	scanCount       = 100
)

// RedisStore guarda cada entrada como o par <key> / <key>_timestamp,
// o timestamp em milissegundos desde a época.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: url do redis inválida: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("cache: falha ao conectar no redis: %w", err)
	}

	logrus.WithField("addr", opts.Addr).Info("Conectado ao Redis")
	return newRedisStore(client), nil
}

func newRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	values, err := r.client.MGet(ctx, key, timestampKey(key)).Result()
	if err != nil {
		return Entry{}, false, errors.Wrap(err, "redis mget")
	}

	payload, ok := values[0].(string)
	if !ok {
		return Entry{}, false, nil
	}

	entry := Entry{Payload: []byte(payload)}
	if raw, ok := values[1].(string); ok {
		// timestamp ilegível deixa WrittenAt zerado: a entrada conta como expirada
		entry.WrittenAt, _ = parseMillis(raw)
	}
	return entry, true, nil
}

func (r *RedisStore) SetIfAbsent(ctx context.Context, key string, entry Entry, staleBefore time.Time) (bool, error) {
	tsKey := timestampKey(key)
	written := false

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, tsKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			if current, perr := parseMillis(raw); perr == nil && !current.Before(staleBefore) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, entry.Payload, 0)
			pipe.Set(ctx, tsKey, formatMillis(entry.WrittenAt), 0)
			return nil
		})
		if err == nil {
			written = true
		}
		return err
	}

	err := r.client.Watch(ctx, txf, tsKey)
	if errors.Is(err, redis.TxFailedErr) {
		// outro escritor gravou primeiro
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "redis set if absent")
	}
	return written, nil
}

func (r *RedisStore) Put(ctx context.Context, key string, entry Entry) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, entry.Payload, 0)
		pipe.Set(ctx, timestampKey(key), formatMillis(entry.WrittenAt), 0)
		return nil
	})
	return errors.Wrap(err, "redis put")
}

func (r *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	all := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		all = append(all, key, timestampKey(key))
	}
	return errors.Wrap(r.client.Del(ctx, all...).Err(), "redis del")
}

func (r *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)

	iter := r.client.Scan(ctx, 0, prefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, timestampSuffix) {
			continue
		}
		keys = append(keys, key)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redis scan")
	}
	return keys, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func timestampKey(key string) string {
	return key + timestampSuffix
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseMillis(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
