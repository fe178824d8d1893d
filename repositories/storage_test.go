package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCmdable struct {
	values map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: make(map[string]string)}
}

func (m *mockCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.values[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			delete(m.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

// fakePG understands the three statements PostgresStorage issues.
type fakePG struct {
	rows map[string]string
}

func (f *fakePG) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	key := args[0].(string)
	if strings.HasPrefix(strings.TrimSpace(sql), "DELETE") {
		delete(f.rows, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	f.rows[key] = args[1].(string)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakePG) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func storageDrivers(t *testing.T) map[string]Storage {
	t.Helper()

	sqlite, err := NewSQLiteStorage(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Storage{
		"memory":    NewMemoryStorage(),
		"sqlite":    sqlite,
		"redis":     &RedisStorage{store: newMockCmdable()},
		"postgres":  NewPostgresStorage(&fakePG{rows: make(map[string]string)}),
		"namespace": WithNamespace(NewMemoryStorage(), "tab-1"),
	}
}

func TestStorageDriversRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range storageDrivers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "cart")
			require.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, s.Set(ctx, "cart", []byte(`[{"id":1}]`)))
			got, err := s.Get(ctx, "cart")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":1}]`, string(got))

			require.NoError(t, s.Set(ctx, "cart", []byte(`[]`)))
			got, err = s.Get(ctx, "cart")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got))

			require.NoError(t, s.Remove(ctx, "cart"))
			_, err = s.Get(ctx, "cart")
			require.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, s.Remove(ctx, "cart"))
		})
	}
}

func TestWithNamespacePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStorage()
	s := WithNamespace(base, "shop")

	require.NoError(t, s.Set(ctx, KeyCart, []byte(`[]`)))
	assert.Equal(t, []string{"shop:cart"}, base.Keys())
	assert.Same(t, base, WithNamespace(base, ""))
}

func TestSQLiteStoragePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.db")

	first, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, KeyIsLoggedIn, []byte(`true`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, KeyIsLoggedIn)
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))
}

func TestMemoryStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	value := []byte(`true`)

	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))
}
