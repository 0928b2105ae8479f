package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

type NewsletterStore struct {
	db *sqlx.DB
}

func NewNewsletterStore(db *sqlx.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

const newsletterColumns = "id, title, body, publisher_id, created_at"

func (s *NewsletterStore) Get(ctx context.Context, id int64) (*domain.Newsletter, error) {
	var newsletter domain.Newsletter
	err := s.db.GetContext(ctx, &newsletter,
		"SELECT "+newsletterColumns+" FROM newsletters WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &newsletter, nil
}

func (s *NewsletterStore) Create(ctx context.Context, newsletter *domain.Newsletter) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	err := exec.QueryRowxContext(ctx, `
		INSERT INTO newsletters (title, body, publisher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		newsletter.Title, newsletter.Body, newsletter.PublisherID,
	).Scan(&newsletter.ID, &newsletter.CreatedAt)
	if err != nil {
		return 0, err
	}
	return newsletter.ID, nil
}

// AddOwner records journalist ownership in the membership table. Runs under
// the caller's transaction when creation and ownership must land together.
func (s *NewsletterStore) AddOwner(ctx context.Context, newsletterID, journalistID int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO newsletter_owners (newsletter_id, journalist_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		newsletterID, journalistID,
	)
	return err
}

func (s *NewsletterStore) IsOwner(ctx context.Context, newsletterID, journalistID int64) (bool, error) {
	var owner bool
	err := s.db.GetContext(ctx, &owner, `
		SELECT EXISTS (
			SELECT 1 FROM newsletter_owners
			WHERE newsletter_id = $1 AND journalist_id = $2
		)`,
		newsletterID, journalistID,
	)
	return owner, err
}

func (s *NewsletterStore) Update(ctx context.Context, newsletter *domain.Newsletter) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE newsletters SET title = $1, body = $2, publisher_id = $3 WHERE id = $4",
		newsletter.Title, newsletter.Body, newsletter.PublisherID, newsletter.ID,
	)
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

func (s *NewsletterStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM newsletters WHERE id = $1", id)
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

func (s *NewsletterStore) ListByOwner(ctx context.Context, journalistID int64) ([]domain.Newsletter, error) {
	query := `
		SELECT n.id, n.title, n.body, n.publisher_id, n.created_at
		FROM newsletters n
		INNER JOIN newsletter_owners o ON o.newsletter_id = n.id
		WHERE o.journalist_id = $1
		ORDER BY n.created_at DESC`

	var newsletters []domain.Newsletter
	err := s.db.SelectContext(ctx, &newsletters, query, journalistID)
	return newsletters, err
}

func (s *NewsletterStore) ListAll(ctx context.Context) ([]domain.Newsletter, error) {
	var newsletters []domain.Newsletter
	err := s.db.SelectContext(ctx, &newsletters,
		"SELECT "+newsletterColumns+" FROM newsletters ORDER BY created_at DESC")
	return newsletters, err
}

// ListSubscribed returns newsletters from publishers the reader follows.
// Newsletters carry no journalist reference, so only the publisher
// subscription path applies.
func (s *NewsletterStore) ListSubscribed(ctx context.Context, readerID int64) ([]domain.Newsletter, error) {
	query := `
		SELECT n.id, n.title, n.body, n.publisher_id, n.created_at
		FROM newsletters n
		WHERE EXISTS (
			SELECT 1 FROM publisher_subscriptions ps
			WHERE ps.reader_id = $1 AND ps.publisher_id = n.publisher_id
		)
		ORDER BY n.created_at DESC`

	var newsletters []domain.Newsletter
	err := s.db.SelectContext(ctx, &newsletters, query, readerID)
	return newsletters, err
}
