package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		"SELECT id, username, email, role FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT u.id, u.username, u.email, u.role
		FROM users u
		INNER JOIN api_tokens t ON t.user_id = u.id
		WHERE t.token = $1`

	err := s.db.GetContext(ctx, &user, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, role) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.Role,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *UserStore) IssueToken(ctx context.Context, userID int64, token string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO api_tokens (token, user_id) VALUES ($1, $2)",
		token, userID,
	)
	return err
}

// SetRole updates only the role column. Clearing the sets that the new role
// makes irrelevant is the caller's job, inside the same transaction.
func (s *UserStore) SetRole(ctx context.Context, userID int64, role domain.Role) error {
	exec := GetExecutor(ctx, s.db)
	res, err := exec.ExecContext(ctx,
		"UPDATE users SET role = $1 WHERE id = $2", role, userID)
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

func (s *UserStore) ClearSubscriptions(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx,
		"DELETE FROM publisher_subscriptions WHERE reader_id = $1", userID); err != nil {
		return err
	}
	_, err := exec.ExecContext(ctx,
		"DELETE FROM journalist_subscriptions WHERE reader_id = $1", userID)
	return err
}

// ClearOwnedNewsletters drops the user's newsletter memberships. Article
// authorship is a foreign key and stays in place; a demoted journalist
// simply loses the role that made it reachable.
func (s *UserStore) ClearOwnedNewsletters(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		"DELETE FROM newsletter_owners WHERE journalist_id = $1", userID)
	return err
}

func (s *UserStore) SubscribeToPublisher(ctx context.Context, readerID, publisherID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO publisher_subscriptions (reader_id, publisher_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		readerID, publisherID,
	)
	return err
}

func (s *UserStore) SubscribeToJournalist(ctx context.Context, readerID, journalistID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journalist_subscriptions (reader_id, journalist_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		readerID, journalistID,
	)
	return err
}

func (s *UserStore) IsSubscribedToPublisher(ctx context.Context, readerID, publisherID int64) (bool, error) {
	var subscribed bool
	err := s.db.GetContext(ctx, &subscribed, `
		SELECT EXISTS (
			SELECT 1 FROM publisher_subscriptions
			WHERE reader_id = $1 AND publisher_id = $2
		)`,
		readerID, publisherID,
	)
	return subscribed, err
}

func (s *UserStore) IsSubscribedToJournalist(ctx context.Context, readerID, journalistID int64) (bool, error) {
	var subscribed bool
	err := s.db.GetContext(ctx, &subscribed, `
		SELECT EXISTS (
			SELECT 1 FROM journalist_subscriptions
			WHERE reader_id = $1 AND journalist_id = $2
		)`,
		readerID, journalistID,
	)
	return subscribed, err
}

// SubscriberEmails resolves the fan-out recipient set: readers subscribed to
// the publisher or the journalist, with a non-empty email, deduplicated.
func (s *UserStore) SubscriberEmails(ctx context.Context, publisherID, journalistID int64) ([]string, error) {
	query := `
		SELECT DISTINCT u.email
		FROM users u
		WHERE u.role = 'reader'
		  AND u.email <> ''
		  AND (
			EXISTS (
				SELECT 1 FROM publisher_subscriptions ps
				WHERE ps.reader_id = u.id AND ps.publisher_id = $1
			)
			OR EXISTS (
				SELECT 1 FROM journalist_subscriptions js
				WHERE js.reader_id = u.id AND js.journalist_id = $2
			)
		  )
		ORDER BY u.email`

	var emails []string
	err := s.db.SelectContext(ctx, &emails, query, publisherID, journalistID)
	return emails, err
}
