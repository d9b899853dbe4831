package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// maxIDAttempts bounds id regeneration when an insert collides.
const maxIDAttempts = 3

// Patch lists top-level wire fields to replace on update. Nested objects are
// replaced wholesale.
type Patch map[string]any

// documents is the typed view over one collection that every repository embeds.
type documents[T any] struct {
	store      persistence.DocumentStore
	collection string
	prefix     string
	resource   string
	newID      func(prefix string) (string, error)
}

func newDocuments[T any](store persistence.DocumentStore, collection, prefix, resource string) documents[T] {
	return documents[T]{
		store:      store,
		collection: collection,
		prefix:     prefix,
		resource:   resource,
		newID:      util.NewID,
	}
}

// create assigns a fresh id through setID and inserts entity, regenerating the
// id if the store reports a collision.
func (d documents[T]) create(ctx context.Context, entity *T, setID func(string)) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := d.newID(d.prefix)
		if err != nil {
			return err
		}
		setID(id)
		err = d.insert(ctx, id, entity)
		if errors.Is(err, persistence.ErrDuplicateKey) {
			continue
		}
		return err
	}
	return fmt.Errorf("%s: no unique id after %d attempts", d.collection, maxIDAttempts)
}

// insert stores entity under an id the caller already chose.
func (d documents[T]) insert(ctx context.Context, id string, entity *T) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return d.store.Insert(ctx, d.collection, id, raw)
}

func (d documents[T]) get(ctx context.Context, id string) (*T, error) {
	return d.findOne(ctx, persistence.Where("id", id))
}

// findOne returns the first match in insertion order.
func (d documents[T]) findOne(ctx context.Context, filter persistence.Filter) (*T, error) {
	raw, err := d.store.FindOne(ctx, d.collection, filter)
	if err != nil {
		return nil, d.translate(err)
	}
	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.collection, err)
	}
	return &entity, nil
}

func (d documents[T]) find(ctx context.Context, filter persistence.Filter) ([]T, error) {
	rows, err := d.store.Find(ctx, d.collection, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		var entity T
		if err := json.Unmarshal(raw, &entity); err != nil {
			return nil, fmt.Errorf("decode %s: %w", d.collection, err)
		}
		out = append(out, entity)
	}
	return out, nil
}

// update applies patch and returns the stored record.
func (d documents[T]) update(ctx context.Context, id string, patch Patch) (*T, error) {
	if len(patch) > 0 {
		raw, err := json.Marshal(patch)
		if err != nil {
			return nil, err
		}
		if err := d.store.Set(ctx, d.collection, id, raw); err != nil {
			return nil, d.translate(err)
		}
	}
	return d.get(ctx, id)
}

func (d documents[T]) delete(ctx context.Context, id string) error {
	return d.translate(d.store.Delete(ctx, d.collection, id))
}

func (d documents[T]) deleteMany(ctx context.Context, filter persistence.Filter) (int64, error) {
	return d.store.DeleteMany(ctx, d.collection, filter)
}

func (d documents[T]) drop(ctx context.Context) error {
	return d.store.Drop(ctx, d.collection)
}

func (d documents[T]) translate(err error) error {
	if errors.Is(err, persistence.ErrNotFound) {
		return util.NewNotFound(d.resource, nil)
	}
	return err
}
