package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db)

	writtenAt := time.UnixMilli(1715335200000)

	mock.ExpectMGet("k1", "k1_timestamp").SetVal([]interface{}{`{"value":1}`, "1715335200000"})
	mock.ExpectMGet("k2", "k2_timestamp").SetVal([]interface{}{nil, nil})
	mock.ExpectMGet("k3", "k3_timestamp").SetVal([]interface{}{"{}", "não é número"})
	mock.ExpectMGet("k4", "k4_timestamp").SetErr(errors.New("conexão recusada"))

	entry, ok, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"value":1}`, string(entry.Payload))
	assert.True(t, writtenAt.Equal(entry.WrittenAt))

	_, ok, err = store.Get(ctx, "k2")
	require.NoError(t, err)
	assert.False(t, ok)

	entry, ok, err = store.Get(ctx, "k3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, entry.WrittenAt.IsZero())

	_, _, err = store.Get(ctx, "k4")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Put(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db)

	payload := []byte(`{"value":2}`)
	writtenAt := time.UnixMilli(1715335200000)

	mock.ExpectTxPipeline()
	mock.ExpectSet("k1", payload, 0).SetVal("OK")
	mock.ExpectSet("k1_timestamp", "1715335200000", 0).SetVal("OK")
	mock.ExpectTxPipelineExec()

	require.NoError(t, store.Put(ctx, "k1", Entry{Payload: payload, WrittenAt: writtenAt}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_DeleteRemovesTimestamps(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db)

	mock.ExpectDel("a", "a_timestamp", "b", "b_timestamp").SetVal(4)

	require.NoError(t, store.Delete(ctx, "a", "b"))
	require.NoError(t, store.Delete(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_KeysSkipsTimestamps(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db)

	prefix := Prefix(AggregateFunnel)
	mock.ExpectScan(0, prefix+"*", scanCount).SetVal([]string{
		prefix + "aaa",
		prefix + "aaa_timestamp",
		prefix + "bbb",
	}, 0)

	keys, err := store.Keys(ctx, prefix)
	require.NoError(t, err)
	assert.Equal(t, []string{prefix + "aaa", prefix + "bbb"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, store.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("timeout"))
	assert.Error(t, store.Ping(context.Background()))
}

func TestMillis(t *testing.T) {
	ts := time.Date(2024, 5, 10, 10, 0, 0, 123_000_000, time.UTC)

	parsed, err := parseMillis(formatMillis(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))

	_, err = parseMillis("abc")
	assert.Error(t, err)
}
