package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = "id, title, body, approved, publisher_id, journalist_id, created_at"

func (s *ArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	err := s.db.GetContext(ctx, &article,
		"SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (title, body, approved, publisher_id, journalist_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		article.Title,
		article.Body,
		article.Approved,
		article.PublisherID,
		article.JournalistID,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return 0, err
	}
	return article.ID, nil
}

// Update touches only the editable columns. The approved flag moves solely
// through Approve.
func (s *ArticleStore) Update(ctx context.Context, article *domain.Article) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE articles SET title = $1, body = $2, publisher_id = $3 WHERE id = $4",
		article.Title, article.Body, article.PublisherID, article.ID,
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

func (s *ArticleStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
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

// Approve flips approved to true and reports whether this call performed the
// transition. The WHERE NOT approved guard makes the flip one-way and gives
// concurrent duplicate approvals at most one true result, so the fan-out
// fires exactly once per pending article.
func (s *ArticleStore) Approve(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE articles SET approved = TRUE WHERE id = $1 AND NOT approved", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (s *ArticleStore) ListByJournalist(ctx context.Context, journalistID int64) ([]domain.Article, error) {
	var articles []domain.Article
	err := s.db.SelectContext(ctx, &articles,
		"SELECT "+articleColumns+" FROM articles WHERE journalist_id = $1 ORDER BY created_at DESC",
		journalistID,
	)
	return articles, err
}

func (s *ArticleStore) ListAll(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	err := s.db.SelectContext(ctx, &articles,
		"SELECT "+articleColumns+" FROM articles ORDER BY created_at DESC")
	return articles, err
}

func (s *ArticleStore) ListPending(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	err := s.db.SelectContext(ctx, &articles,
		"SELECT "+articleColumns+" FROM articles WHERE NOT approved ORDER BY created_at DESC")
	return articles, err
}

// ListApprovedForReader returns approved articles whose publisher or
// journalist the reader follows, as plain article rows.
func (s *ArticleStore) ListApprovedForReader(ctx context.Context, readerID int64) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		WHERE a.approved
		  AND (
			EXISTS (
				SELECT 1 FROM publisher_subscriptions ps
				WHERE ps.reader_id = $1 AND ps.publisher_id = a.publisher_id
			)
			OR EXISTS (
				SELECT 1 FROM journalist_subscriptions js
				WHERE js.reader_id = $1 AND js.journalist_id = a.journalist_id
			)
		  )
		ORDER BY a.created_at DESC`

	var articles []domain.Article
	err := s.db.SelectContext(ctx, &articles, query, readerID)
	return articles, err
}

// ListSubscribed returns the reader's feed: approved articles whose publisher
// or journalist the reader follows, joined with display names. The EXISTS
// pair keeps an article matching both subscription paths to a single row.
func (s *ArticleStore) ListSubscribed(ctx context.Context, readerID int64) ([]domain.ArticleSummary, error) {
	query := `
		SELECT a.id, a.title, a.body AS content,
		       p.name AS publisher_name, j.username AS journalist_name,
		       a.approved, a.created_at
		FROM articles a
		INNER JOIN publishers p ON p.id = a.publisher_id
		INNER JOIN users j ON j.id = a.journalist_id
		WHERE a.approved
		  AND (
			EXISTS (
				SELECT 1 FROM publisher_subscriptions ps
				WHERE ps.reader_id = $1 AND ps.publisher_id = a.publisher_id
			)
			OR EXISTS (
				SELECT 1 FROM journalist_subscriptions js
				WHERE js.reader_id = $1 AND js.journalist_id = a.journalist_id
			)
		  )
		ORDER BY a.created_at DESC`

	var articles []domain.ArticleSummary
	err := s.db.SelectContext(ctx, &articles, query, readerID)
	return articles, err
}
