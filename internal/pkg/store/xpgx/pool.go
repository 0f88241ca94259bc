package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool with squirrel-aware helpers.
type Pool struct {
	*pgxpool.Pool
}

// Connect dials Postgres, retrying while the database comes up.
func Connect(ctx context.Context, dsn string) (*Pool, error) {
	var p *pgxpool.Pool
	err := backoff.Retry(
		func() error {
			var connErr error
			p, connErr = pgxpool.New(ctx, dsn)
			if connErr != nil {
				return fmt.Errorf("pgxpool.New: %w", connErr)
			}
			if pingErr := p.Ping(ctx); pingErr != nil {
				p.Close()
				return fmt.Errorf("pool.Ping: %w", pingErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return &Pool{p}, nil
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.Exec(ctx, sql, args...)
}

// Get scans a single row into T; pgx.ErrNoRows passes through untouched.
func Get[T any](ctx context.Context, p *Pool, query sq.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Select scans all rows into a slice of *T. No rows yields an empty slice.
func Select[T any](ctx context.Context, p *Pool, query sq.Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}
