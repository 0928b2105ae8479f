//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsroom/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM journalist_subscriptions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM publisher_subscriptions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM newsletter_owners")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM newsletters")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM publishers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM api_tokens")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createUser(username, email string, role domain.Role) int64 {
	store := NewUserStore(s.db)
	id, err := store.Create(s.ctx, &domain.User{Username: username, Email: email, Role: role})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) createPublisher(name string) int64 {
	store := NewPublisherStore(s.db)
	id, err := store.Create(s.ctx, name)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) createArticle(title string, approved bool, publisherID, journalistID int64) int64 {
	store := NewArticleStore(s.db)
	article := &domain.Article{
		Title:        title,
		Body:         "body of " + title,
		Approved:     approved,
		PublisherID:  publisherID,
		JournalistID: journalistID,
	}
	id, err := store.Create(s.ctx, article)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestUserStore_CreateAndGetByToken() {
	store := NewUserStore(s.db)

	id := s.createUser("rita", "rita@example.com", domain.RoleReader)
	s.Require().NoError(store.IssueToken(s.ctx, id, "tok-123"))

	user, err := store.GetByToken(s.ctx, "tok-123")
	s.NoError(err)
	s.Equal(id, user.ID)
	s.Equal("rita", user.Username)
	s.Equal(domain.RoleReader, user.Role)

	_, err = store.GetByToken(s.ctx, "unknown")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestUserStore_SetRoleMissingUser() {
	store := NewUserStore(s.db)

	err := store.SetRole(s.ctx, 999999, domain.RoleEditor)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ApproveTransitionsOnce() {
	store := NewArticleStore(s.db)
	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	articleID := s.createArticle("Pending", false, publisherID, journalistID)

	transitioned, err := store.Approve(s.ctx, articleID)
	s.NoError(err)
	s.True(transitioned)

	transitioned, err = store.Approve(s.ctx, articleID)
	s.NoError(err)
	s.False(transitioned)

	article, err := store.Get(s.ctx, articleID)
	s.NoError(err)
	s.True(article.Approved)
}

func (s *PostgresIntegrationSuite) TestArticleStore_UpdateLeavesApprovalAlone() {
	store := NewArticleStore(s.db)
	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	articleID := s.createArticle("Original", true, publisherID, journalistID)

	article, err := store.Get(s.ctx, articleID)
	s.Require().NoError(err)

	article.Title = "Edited"
	s.NoError(store.Update(s.ctx, article))

	got, err := store.Get(s.ctx, articleID)
	s.NoError(err)
	s.Equal("Edited", got.Title)
	s.True(got.Approved)
}

func (s *PostgresIntegrationSuite) TestUserStore_SubscriberEmailsDeduplicates() {
	store := NewUserStore(s.db)
	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)

	// Subscribed to both the publisher and the journalist: one email.
	bothID := s.createUser("both", "both@example.com", domain.RoleReader)
	s.Require().NoError(store.SubscribeToPublisher(s.ctx, bothID, publisherID))
	s.Require().NoError(store.SubscribeToJournalist(s.ctx, bothID, journalistID))

	pubOnlyID := s.createUser("pubonly", "pubonly@example.com", domain.RoleReader)
	s.Require().NoError(store.SubscribeToPublisher(s.ctx, pubOnlyID, publisherID))

	// No email address: excluded.
	silentID := s.createUser("silent", "", domain.RoleReader)
	s.Require().NoError(store.SubscribeToPublisher(s.ctx, silentID, publisherID))

	// Unsubscribed reader: excluded.
	s.createUser("bystander", "bystander@example.com", domain.RoleReader)

	emails, err := store.SubscriberEmails(s.ctx, publisherID, journalistID)
	s.NoError(err)
	s.Equal([]string{"both@example.com", "pubonly@example.com"}, emails)
}

func (s *PostgresIntegrationSuite) TestUserStore_SubscribeIsIdempotent() {
	store := NewUserStore(s.db)
	publisherID := s.createPublisher("Daily")
	readerID := s.createUser("rita", "rita@example.com", domain.RoleReader)

	s.NoError(store.SubscribeToPublisher(s.ctx, readerID, publisherID))
	s.NoError(store.SubscribeToPublisher(s.ctx, readerID, publisherID))

	var count int
	err := s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM publisher_subscriptions WHERE reader_id = $1", readerID)
	s.NoError(err)
	s.Equal(1, count)
}

// A reader subscribed to one publisher and one journalist sees approved
// articles from either source, never pending ones, and never articles from
// sources they do not follow.
func (s *PostgresIntegrationSuite) TestArticleStore_ListSubscribedFeed() {
	userStore := NewUserStore(s.db)
	articleStore := NewArticleStore(s.db)

	followedPublisher := s.createPublisher("Followed Press")
	otherPublisher := s.createPublisher("Other Press")
	followedJournalist := s.createUser("followed", "followed@example.com", domain.RoleJournalist)
	otherJournalist := s.createUser("other", "other@example.com", domain.RoleJournalist)

	readerID := s.createUser("rita", "rita@example.com", domain.RoleReader)
	s.Require().NoError(userStore.SubscribeToPublisher(s.ctx, readerID, followedPublisher))
	s.Require().NoError(userStore.SubscribeToJournalist(s.ctx, readerID, followedJournalist))

	viaPublisher := s.createArticle("Via Publisher", true, followedPublisher, otherJournalist)
	viaJournalist := s.createArticle("Via Journalist", true, otherPublisher, followedJournalist)
	viaBoth := s.createArticle("Via Both", true, followedPublisher, followedJournalist)
	s.createArticle("Pending", false, followedPublisher, followedJournalist)
	s.createArticle("Unrelated", true, otherPublisher, otherJournalist)

	feed, err := articleStore.ListSubscribed(s.ctx, readerID)
	s.NoError(err)
	s.Len(feed, 3)

	ids := make(map[int64]domain.ArticleSummary, len(feed))
	for _, item := range feed {
		ids[item.ID] = item
	}
	s.Contains(ids, viaPublisher)
	s.Contains(ids, viaJournalist)
	s.Contains(ids, viaBoth)

	s.Equal("Followed Press", ids[viaPublisher].PublisherName)
	s.Equal("other", ids[viaPublisher].JournalistName)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ListApprovedForReader() {
	userStore := NewUserStore(s.db)
	articleStore := NewArticleStore(s.db)

	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	readerID := s.createUser("rita", "rita@example.com", domain.RoleReader)
	s.Require().NoError(userStore.SubscribeToPublisher(s.ctx, readerID, publisherID))

	approvedID := s.createArticle("Approved", true, publisherID, journalistID)
	s.createArticle("Pending", false, publisherID, journalistID)

	articles, err := articleStore.ListApprovedForReader(s.ctx, readerID)
	s.NoError(err)
	s.Len(articles, 1)
	s.Equal(approvedID, articles[0].ID)
}

func (s *PostgresIntegrationSuite) TestPublisherStore_DeleteCascades() {
	publisherStore := NewPublisherStore(s.db)
	articleStore := NewArticleStore(s.db)

	publisherID := s.createPublisher("Doomed Press")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	articleID := s.createArticle("Doomed", true, publisherID, journalistID)

	s.NoError(publisherStore.Delete(s.ctx, publisherID))

	_, err := articleStore.Get(s.ctx, articleID)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestNewsletterStore_OwnershipMembership() {
	store := NewNewsletterStore(s.db)

	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	otherID := s.createUser("nils", "nils@example.com", domain.RoleJournalist)

	newsletter := &domain.Newsletter{Title: "Weekly", Body: "digest", PublisherID: publisherID}
	newsletterID, err := store.Create(s.ctx, newsletter)
	s.Require().NoError(err)

	s.NoError(store.AddOwner(s.ctx, newsletterID, journalistID))
	// Repeated membership insert is a no-op.
	s.NoError(store.AddOwner(s.ctx, newsletterID, journalistID))

	owner, err := store.IsOwner(s.ctx, newsletterID, journalistID)
	s.NoError(err)
	s.True(owner)

	owner, err = store.IsOwner(s.ctx, newsletterID, otherID)
	s.NoError(err)
	s.False(owner)

	owned, err := store.ListByOwner(s.ctx, journalistID)
	s.NoError(err)
	s.Len(owned, 1)
	s.Equal(newsletterID, owned[0].ID)
}

func (s *PostgresIntegrationSuite) TestNewsletterStore_ListSubscribed() {
	userStore := NewUserStore(s.db)
	store := NewNewsletterStore(s.db)

	followedPublisher := s.createPublisher("Followed Press")
	otherPublisher := s.createPublisher("Other Press")
	readerID := s.createUser("rita", "rita@example.com", domain.RoleReader)
	s.Require().NoError(userStore.SubscribeToPublisher(s.ctx, readerID, followedPublisher))

	visibleID, err := store.Create(s.ctx, &domain.Newsletter{
		Title: "Visible", Body: "b", PublisherID: followedPublisher,
	})
	s.Require().NoError(err)
	_, err = store.Create(s.ctx, &domain.Newsletter{
		Title: "Hidden", Body: "b", PublisherID: otherPublisher,
	})
	s.Require().NoError(err)

	newsletters, err := store.ListSubscribed(s.ctx, readerID)
	s.NoError(err)
	s.Len(newsletters, 1)
	s.Equal(visibleID, newsletters[0].ID)
}

func (s *PostgresIntegrationSuite) TestRoleChange_ClearsInsideTransaction() {
	userStore := NewUserStore(s.db)
	tm := NewTransactionManager(s.db)

	publisherID := s.createPublisher("Daily")
	journalistID := s.createUser("jana", "jana@example.com", domain.RoleJournalist)
	readerID := s.createUser("rita", "rita@example.com", domain.RoleReader)
	s.Require().NoError(userStore.SubscribeToPublisher(s.ctx, readerID, publisherID))
	s.Require().NoError(userStore.SubscribeToJournalist(s.ctx, readerID, journalistID))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := userStore.SetRole(ctx, readerID, domain.RoleJournalist); err != nil {
			return err
		}
		return userStore.ClearSubscriptions(ctx, readerID)
	})
	s.NoError(err)

	user, err := userStore.GetByID(s.ctx, readerID)
	s.NoError(err)
	s.Equal(domain.RoleJournalist, user.Role)

	var count int
	err = s.db.GetContext(s.ctx, &count, `
		SELECT (SELECT COUNT(*) FROM publisher_subscriptions WHERE reader_id = $1)
		     + (SELECT COUNT(*) FROM journalist_subscriptions WHERE reader_id = $1)`,
		readerID)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewNewsletterStore(s.db)
	publisherID := s.createPublisher("Daily")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Create(ctx, &domain.Newsletter{
			Title: "Doomed", Body: "b", PublisherID: publisherID,
		})
		if err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM newsletters")
	s.NoError(err)
	s.Equal(0, count)
}
