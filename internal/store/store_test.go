package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/minidns-io/minidns/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesMigrations(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Health(context.Background()))

	// A fresh database answers queries against the migrated schema.
	records, err := s.FindByHostname(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	_, err = s.Insert(context.Background(), store.Record{Hostname: "example.com", Type: store.TypeA, Value: "192.0.2.1"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening must not fail on already-applied migrations.
	s2, err := store.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	records, err := s2.FindByHostname(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestInsert_AssignsIDAndCreatedAt(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Insert(context.Background(), store.Record{
		Hostname: "example.com",
		Type:     store.TypeA,
		Value:    "192.0.2.1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, "example.com", rec.Hostname)

	other, err := s.Insert(context.Background(), store.Record{
		Hostname: "example.com",
		Type:     store.TypeA,
		Value:    "192.0.2.2",
	})
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestFindByHostname_InsertionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	values := []string{"192.0.2.3", "192.0.2.1", "192.0.2.2"}
	for _, v := range values {
		_, err := s.Insert(ctx, store.Record{Hostname: "multi.example.com", Type: store.TypeA, Value: v})
		require.NoError(t, err)
	}

	records, err := s.FindByHostname(ctx, "multi.example.com")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, v := range values {
		assert.Equal(t, v, records[i].Value)
	}
}

func TestFindByHostname_ExactHostnameOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, store.Record{Hostname: "a.example.com", Type: store.TypeA, Value: "192.0.2.1"})
	require.NoError(t, err)

	records, err := s.FindByHostname(ctx, "example.com")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteExact(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, store.Record{Hostname: "example.com", Type: store.TypeA, Value: "192.0.2.1"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, store.Record{Hostname: "example.com", Type: store.TypeA, Value: "192.0.2.2"})
	require.NoError(t, err)

	// Value must match exactly.
	deleted, err := s.DeleteExact(ctx, "example.com", store.TypeA, "192.0.2.9")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = s.DeleteExact(ctx, "example.com", store.TypeA, "192.0.2.1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// Second delete of the same record is a miss.
	deleted, err = s.DeleteExact(ctx, "example.com", store.TypeA, "192.0.2.1")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	records, err := s.FindByHostname(ctx, "example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "192.0.2.2", records[0].Value)
}

func TestDeleteExact_TypeMismatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, store.Record{Hostname: "alias.example.com", Type: store.TypeCNAME, Value: "example.com"})
	require.NoError(t, err)

	deleted, err := s.DeleteExact(ctx, "alias.example.com", store.TypeA, "example.com")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
