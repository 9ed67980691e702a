package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const kvTable = "kv_store"

// PgxQuerier is the slice of *pgxpool.Pool the repository needs.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db        PgxQuerier
	namespace string
	psql      sq.StatementBuilderType
}

func NewPostgresRepository(db PgxQuerier, namespace string) FavoritesRepository {
	return &postgresRepository{
		db:        db,
		namespace: namespace,
		psql:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepository) where(key string) sq.And {
	return sq.And{sq.Eq{"namespace": r.namespace}, sq.Eq{"item_key": key}}
}

func (r *postgresRepository) Load(ctx context.Context, key string) ([]string, error) {
	query, args, err := r.psql.Select("members").From(kvTable).Where(r.where(key)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var members []string
	err = r.db.QueryRow(ctx, query, args...).Scan(&members)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", r.namespace, key, err)
	}
	return members, nil
}

func (r *postgresRepository) Save(ctx context.Context, key string, members []string) error {
	if members == nil {
		members = []string{}
	}

	query, args, err := r.psql.Insert(kvTable).
		Columns("namespace", "item_key", "members").
		Values(r.namespace, key, members).
		Suffix("ON CONFLICT (namespace, item_key) DO UPDATE SET members = EXCLUDED.members, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", r.namespace, key, err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, key string) error {
	query, args, err := r.psql.Delete(kvTable).Where(r.where(key)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", r.namespace, key, err)
	}
	return nil
}
