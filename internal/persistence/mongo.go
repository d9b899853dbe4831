package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
)

// Mongo keeps one MongoDB collection per entity. The storage-assigned _id is
// never projected back to callers.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var noObjectID = bson.M{"_id": 0}

// NewMongo connects to MongoDB and verifies the primary is reachable.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongo", zap.String("database", cfg.Database))
	return &Mongo{client: client, db: client.Database(cfg.Database)}, nil
}

// EnsureIndexes creates a unique index on the generated id of every collection.
func (m *Mongo) EnsureIndexes(ctx context.Context, collections []string) error {
	for _, name := range collections {
		_, err := m.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("id_unique"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) Insert(ctx context.Context, collection, id string, doc []byte) error {
	var body bson.M
	if err := bson.UnmarshalExtJSON(doc, false, &body); err != nil {
		return err
	}
	body["id"] = id
	if _, err := m.db.Collection(collection).InsertOne(ctx, body); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	raw, err := m.db.Collection(collection).
		FindOne(ctx, mongoFilter(filter), options.FindOne().SetProjection(noObjectID)).
		Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return bson.MarshalExtJSON(raw, false, false)
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Filter) ([][]byte, error) {
	cursor, err := m.db.Collection(collection).
		Find(ctx, mongoFilter(filter), options.Find().SetProjection(noObjectID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := [][]byte{}
	for cursor.Next(ctx) {
		doc, err := bson.MarshalExtJSON(cursor.Current, false, false)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, cursor.Err()
}

func (m *Mongo) Set(ctx context.Context, collection, id string, patch []byte) error {
	var fields bson.M
	if err := bson.UnmarshalExtJSON(patch, false, &fields); err != nil {
		return err
	}
	delete(fields, "id")
	res, err := m.db.Collection(collection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := m.db.Collection(collection).DeleteMany(ctx, mongoFilter(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Drop empties the collection but keeps its indexes.
func (m *Mongo) Drop(ctx context.Context, collection string) error {
	_, err := m.db.Collection(collection).DeleteMany(ctx, bson.M{})
	return err
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoFilter relies on MongoDB matching a scalar against array elements for
// Contains conditions.
func mongoFilter(filter Filter) bson.M {
	out := bson.M{}
	for field, value := range filter.Equals {
		out[field] = value
	}
	for field, elem := range filter.Contains {
		out[field] = elem
	}
	for field, values := range filter.In {
		if values == nil {
			values = []string{}
		}
		out[field] = bson.M{"$in": values}
	}
	return out
}
