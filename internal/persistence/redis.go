package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
)

const redisTxRetries = 3

// Redis stores each collection as a hash of id -> JSON document plus a sorted
// set recording insertion order.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to reach redis: %w", err)
	}

	logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	return &Redis{Client: client}, nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{Client: client}
}

func docsKey(collection string) string  { return "fx:" + collection + ":docs" }
func orderKey(collection string) string { return "fx:" + collection + ":order" }
func seqKey(collection string) string   { return "fx:" + collection + ":seq" }

func (r *Redis) Insert(ctx context.Context, collection, id string, doc []byte) error {
	ok, err := r.Client.HSetNX(ctx, docsKey(collection), id, doc).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateKey
	}
	seq, err := r.Client.Incr(ctx, seqKey(collection)).Result()
	if err != nil {
		return err
	}
	return r.Client.ZAdd(ctx, orderKey(collection), redis.Z{Score: float64(seq), Member: id}).Err()
}

func (r *Redis) FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	var found []byte
	err := r.scan(ctx, collection, func(_ string, raw []byte, doc map[string]any) bool {
		if filter.Matches(doc) {
			found = raw
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *Redis) Find(ctx context.Context, collection string, filter Filter) ([][]byte, error) {
	result := [][]byte{}
	err := r.scan(ctx, collection, func(_ string, raw []byte, doc map[string]any) bool {
		if filter.Matches(doc) {
			result = append(result, raw)
		}
		return true
	})
	return result, err
}

func (r *Redis) Set(ctx context.Context, collection, id string, patch []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return err
	}
	delete(fields, "id")

	key := docsKey(collection)
	txf := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(current, &doc); err != nil {
			return err
		}
		for field, value := range fields {
			doc[field] = value
		}
		merged, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, id, merged)
			return nil
		})
		return err
	}

	for i := 0; i < redisTxRetries; i++ {
		err := r.Client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return redis.TxFailedErr
}

func (r *Redis) Delete(ctx context.Context, collection, id string) error {
	n, err := r.Client.HDel(ctx, docsKey(collection), id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return r.Client.ZRem(ctx, orderKey(collection), id).Err()
}

func (r *Redis) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	var ids []string
	err := r.scan(ctx, collection, func(id string, _ []byte, doc map[string]any) bool {
		if filter.Matches(doc) {
			ids = append(ids, id)
		}
		return true
	})
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	var deleted *redis.IntCmd
	_, err = r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.HDel(ctx, docsKey(collection), ids...)
		pipe.ZRem(ctx, orderKey(collection), members...)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted.Val(), nil
}

func (r *Redis) Drop(ctx context.Context, collection string) error {
	return r.Client.Del(ctx, docsKey(collection), orderKey(collection), seqKey(collection)).Err()
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Close closes the client.
func (r *Redis) Close(_ context.Context) error {
	if r != nil && r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// scan walks the collection in insertion order until visit returns false.
func (r *Redis) scan(ctx context.Context, collection string, visit func(id string, raw []byte, doc map[string]any) bool) error {
	ids, err := r.Client.ZRange(ctx, orderKey(collection), 0, -1).Result()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	values, err := r.Client.HMGet(ctx, docsKey(collection), ids...).Result()
	if err != nil {
		return err
	}
	for i, value := range values {
		s, ok := value.(string)
		if !ok {
			continue
		}
		raw := []byte(s)
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, ids[i], err)
		}
		if !visit(ids[i], raw, doc) {
			return nil
		}
	}
	return nil
}
