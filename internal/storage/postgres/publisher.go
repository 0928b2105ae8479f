package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

type PublisherStore struct {
	db *sqlx.DB
}

func NewPublisherStore(db *sqlx.DB) *PublisherStore {
	return &PublisherStore{db: db}
}

func (s *PublisherStore) Get(ctx context.Context, id int64) (*domain.Publisher, error) {
	var publisher domain.Publisher
	err := s.db.GetContext(ctx, &publisher,
		"SELECT id, name FROM publishers WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (s *PublisherStore) List(ctx context.Context) ([]domain.Publisher, error) {
	var publishers []domain.Publisher
	err := s.db.SelectContext(ctx, &publishers,
		"SELECT id, name FROM publishers ORDER BY name")
	return publishers, err
}

func (s *PublisherStore) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO publishers (name) VALUES ($1) RETURNING id", name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the publisher; articles and newsletters cascade at the
// schema level.
func (s *PublisherStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM publishers WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
