package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
)

var (
	// ErrNotFound is returned when no document matches an id or filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when inserting an id that already exists in the collection.
	ErrDuplicateKey = errors.New("duplicate document id")
)

// Collection names.
const (
	CollectionZones             = "zones"
	CollectionBusinesses        = "businesses"
	CollectionActivities        = "activities"
	CollectionAmbulantClients   = "ambulant_clients"
	CollectionActivityClients   = "activity_clients"
	CollectionServiceRequests   = "service_requests"
	CollectionStaffApplications = "staff_applications"
	CollectionStaffUsers        = "staff_users"
)

// Collections lists every collection the service owns.
var Collections = []string{
	CollectionZones,
	CollectionBusinesses,
	CollectionActivities,
	CollectionAmbulantClients,
	CollectionActivityClients,
	CollectionServiceRequests,
	CollectionStaffApplications,
	CollectionStaffUsers,
}

// DocumentStore persists JSON documents keyed by their "id" field. Each call is
// atomic for a single document; there are no multi-document transactions.
type DocumentStore interface {
	Insert(ctx context.Context, collection, id string, doc []byte) error
	FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error)
	Find(ctx context.Context, collection string, filter Filter) ([][]byte, error)
	// Set replaces the top-level fields present in patch (a JSON object).
	Set(ctx context.Context, collection, id string, patch []byte) error
	Delete(ctx context.Context, collection, id string) error
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
	Drop(ctx context.Context, collection string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects the driver selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (DocumentStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		store, err := NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureIndexes(ctx, Collections); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		return store, nil
	case config.StoreDriverPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				_ = pg.Close(ctx)
				return nil, err
			}
		}
		return pg, nil
	case config.StoreDriverRedis:
		return NewRedis(ctx, cfg.Redis, logger)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
