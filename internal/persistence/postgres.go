package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/config"
)

const pgUniqueViolation = "23505"

// Postgres stores documents as JSONB rows in a single documents table.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		return nil, errors.New("POSTGRES_DSN is required for the postgres store driver")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{Pool: pool}, nil
}

// PoolHandle returns the underlying pgx pool.
func (p *Postgres) PoolHandle() *pgxpool.Pool {
	if p == nil {
		return nil
	}
	return p.Pool
}

func (p *Postgres) Insert(ctx context.Context, collection, id string, doc []byte) error {
	const query = `INSERT INTO documents (collection, id, body) VALUES ($1,$2,$3::jsonb)`
	if _, err := p.Pool.Exec(ctx, query, collection, id, string(doc)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (p *Postgres) FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	where, args, err := pgWhere(collection, filter)
	if err != nil {
		return nil, err
	}
	query := "SELECT body FROM documents WHERE " + where + " ORDER BY seq LIMIT 1"

	var body []byte
	if err := p.Pool.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return body, nil
}

func (p *Postgres) Find(ctx context.Context, collection string, filter Filter) ([][]byte, error) {
	where, args, err := pgWhere(collection, filter)
	if err != nil {
		return nil, err
	}
	query := "SELECT body FROM documents WHERE " + where + " ORDER BY seq"

	rows, err := p.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := [][]byte{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		result = append(result, body)
	}
	return result, rows.Err()
}

func (p *Postgres) Set(ctx context.Context, collection, id string, patch []byte) error {
	const query = `
        UPDATE documents SET body = body || ($3::jsonb - 'id'::text), updated_at = NOW()
        WHERE collection=$1 AND id=$2`
	cmd, err := p.Pool.Exec(ctx, query, collection, id, string(patch))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	const query = `DELETE FROM documents WHERE collection=$1 AND id=$2`
	cmd, err := p.Pool.Exec(ctx, query, collection, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	where, args, err := pgWhere(collection, filter)
	if err != nil {
		return 0, err
	}
	cmd, err := p.Pool.Exec(ctx, "DELETE FROM documents WHERE "+where, args...)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (p *Postgres) Drop(ctx context.Context, collection string) error {
	_, err := p.Pool.Exec(ctx, `DELETE FROM documents WHERE collection=$1`, collection)
	return err
}

// Ping verifies database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return errors.New("postgres pool not configured")
	}
	return p.Pool.Ping(ctx)
}

// Close releases pool resources.
func (p *Postgres) Close(_ context.Context) error {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
	return nil
}

// pgWhere renders a filter as JSONB containment and ->> comparisons. Field
// names travel as parameters, never as SQL text.
func pgWhere(collection string, filter Filter) (string, []any, error) {
	args := []any{collection}
	clauses := []string{"collection=$1"}

	if len(filter.Equals) > 0 || len(filter.Contains) > 0 {
		containment := map[string]any{}
		for _, field := range sortedKeys(filter.Equals) {
			containment[field] = filter.Equals[field]
		}
		for _, field := range sortedKeys(filter.Contains) {
			containment[field] = []string{filter.Contains[field]}
		}
		raw, err := json.Marshal(containment)
		if err != nil {
			return "", nil, err
		}
		args = append(args, string(raw))
		clauses = append(clauses, fmt.Sprintf("body @> $%d::jsonb", len(args)))
	}

	for _, field := range sortedKeys(filter.In) {
		args = append(args, field, filter.In[field])
		clauses = append(clauses, fmt.Sprintf("body->>($%d::text) = ANY($%d::text[])", len(args)-1, len(args)))
	}

	return strings.Join(clauses, " AND "), args, nil
}
