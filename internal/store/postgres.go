package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

const (
	defaultPoolSize  = 10
	defaultListLimit = 50
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveList stores a basket snapshot, assigning an id and timestamp when the
// caller left them unset.
func (s *PostgresStore) SaveList(ctx context.Context, list *domain.SavedList) error {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	items, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("marshaling list items: %w", err)
	}

	args := pgx.NamedArgs{
		"id":         list.ID,
		"name":       list.Name,
		"items":      items,
		"total":      list.Total,
		"created_at": list.CreatedAt,
	}
	if _, err := s.pool.Exec(ctx, queryInsertList, args); err != nil {
		return fmt.Errorf("inserting saved list: %w", err)
	}
	return nil
}

// GetList retrieves a saved list by id.
func (s *PostgresStore) GetList(ctx context.Context, id string) (*domain.SavedList, error) {
	list, err := scanList(s.pool.QueryRow(ctx, queryGetList, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying saved list: %w", err)
	}
	return list, nil
}

// ListLists returns saved lists, most recent first.
func (s *PostgresStore) ListLists(ctx context.Context, limit int) ([]domain.SavedList, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.pool.Query(ctx, queryListLists, limit)
	if err != nil {
		return nil, fmt.Errorf("querying saved lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.SavedList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning saved list: %w", err)
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved lists: %w", err)
	}
	return lists, nil
}

// DeleteList removes a saved list by id.
func (s *PostgresStore) DeleteList(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteList, id)
	if err != nil {
		return fmt.Errorf("deleting saved list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanList(row pgx.Row) (*domain.SavedList, error) {
	var (
		list  domain.SavedList
		items []byte
	)
	if err := row.Scan(&list.ID, &list.Name, &items, &list.Total, &list.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &list.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling list items: %w", err)
	}
	return &list, nil
}
