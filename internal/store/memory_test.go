package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.Get(ctx, "1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "1", "a"))
	require.NoError(t, m.Set(ctx, "1", "b"))

	v, err := m.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, m.SetCalls())
}

func TestMemoryStore_InjectedFaults(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "1", "a"))

	m.FailGet("1")
	m.FailSet("2")

	_, err := m.Get(ctx, "1")
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorIs(t, m.Set(ctx, "2", "x"), ErrPersistence)

	m.Heal()

	v, err := m.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	require.NoError(t, m.Set(ctx, "2", "x"))
}

func TestMemoryStore_ListIsACopy(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "1", "a"))

	l, err := m.List(ctx)
	require.NoError(t, err)
	l["1"] = "changed"

	v, err := m.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, m.Delete(ctx, "1"))
	_, err = m.Get(ctx, "1")
	require.ErrorIs(t, err, ErrNotFound)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
