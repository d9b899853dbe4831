package persistence

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFromClient(client)
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestRedisStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t)

	require.NoError(t, store.Insert(ctx, CollectionZones, "Z1", []byte(`{"id":"Z1","nombre":"Isabela","activa":true,"fotografosAsignados":["SU1"]}`)))
	require.NoError(t, store.Insert(ctx, CollectionZones, "Z2", []byte(`{"id":"Z2","nombre":"Condado","activa":false,"fotografosAsignados":[]}`)))

	t.Run("rejects duplicate ids", func(t *testing.T) {
		err := store.Insert(ctx, CollectionZones, "Z1", []byte(`{"id":"Z1"}`))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		docs, err := store.Find(ctx, CollectionZones, All())
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "Z1", decode(t, docs[0])["id"])
		assert.Equal(t, "Z2", decode(t, docs[1])["id"])
	})

	t.Run("filters", func(t *testing.T) {
		docs, err := store.Find(ctx, CollectionZones, Where("activa", true))
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		docs, err = store.Find(ctx, CollectionZones, All().HasElement("fotografosAsignados", "SU1"))
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		docs, err = store.Find(ctx, CollectionZones, All().AnyOf("id", []string{"Z2", "Z9"}))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Condado", decode(t, docs[0])["nombre"])

		docs, err = store.Find(ctx, CollectionZones, All().AnyOf("id", nil))
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("set replaces top-level fields only", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, CollectionZones, "Z1", []byte(`{"fotografosAsignados":[],"descripcion":null}`)))
		raw, err := store.FindOne(ctx, CollectionZones, Where("id", "Z1"))
		require.NoError(t, err)
		doc := decode(t, raw)
		assert.Equal(t, "Isabela", doc["nombre"])
		assert.Equal(t, []any{}, doc["fotografosAsignados"])
		assert.Contains(t, doc, "descripcion")
		assert.Nil(t, doc["descripcion"])

		err = store.Set(ctx, CollectionZones, "missing", []byte(`{"nombre":"x"}`))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, CollectionZones, "Z2"))
		assert.ErrorIs(t, store.Delete(ctx, CollectionZones, "Z2"), ErrNotFound)
		_, err := store.FindOne(ctx, CollectionZones, Where("id", "Z2"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRedisStore_DeleteManyAndDrop(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t)

	require.NoError(t, store.Insert(ctx, CollectionActivities, "A1", []byte(`{"id":"A1","negocioId":"N1"}`)))
	require.NoError(t, store.Insert(ctx, CollectionActivities, "A2", []byte(`{"id":"A2","negocioId":"N1"}`)))
	require.NoError(t, store.Insert(ctx, CollectionActivities, "A3", []byte(`{"id":"A3","negocioId":"N2"}`)))

	n, err := store.DeleteMany(ctx, CollectionActivities, Where("negocioId", "N1"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	docs, err := store.Find(ctx, CollectionActivities, All())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "A3", decode(t, docs[0])["id"])

	require.NoError(t, store.Drop(ctx, CollectionActivities))
	docs, err = store.Find(ctx, CollectionActivities, All())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
