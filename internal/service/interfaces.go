package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsroom/internal/domain"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	IssueToken(ctx context.Context, userID int64, token string) error
	SetRole(ctx context.Context, userID int64, role domain.Role) error
	ClearSubscriptions(ctx context.Context, userID int64) error
	ClearOwnedNewsletters(ctx context.Context, userID int64) error
	SubscribeToPublisher(ctx context.Context, readerID, publisherID int64) error
	SubscribeToJournalist(ctx context.Context, readerID, journalistID int64) error
	IsSubscribedToPublisher(ctx context.Context, readerID, publisherID int64) (bool, error)
	IsSubscribedToJournalist(ctx context.Context, readerID, journalistID int64) (bool, error)
	SubscriberEmails(ctx context.Context, publisherID, journalistID int64) ([]string, error)
}

type PublisherStore interface {
	Get(ctx context.Context, id int64) (*domain.Publisher, error)
	List(ctx context.Context) ([]domain.Publisher, error)
	Create(ctx context.Context, name string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type ArticleStore interface {
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (int64, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) (bool, error)
	ListByJournalist(ctx context.Context, journalistID int64) ([]domain.Article, error)
	ListAll(ctx context.Context) ([]domain.Article, error)
	ListPending(ctx context.Context) ([]domain.Article, error)
	ListApprovedForReader(ctx context.Context, readerID int64) ([]domain.Article, error)
	ListSubscribed(ctx context.Context, readerID int64) ([]domain.ArticleSummary, error)
}

type NewsletterStore interface {
	Get(ctx context.Context, id int64) (*domain.Newsletter, error)
	Create(ctx context.Context, newsletter *domain.Newsletter) (int64, error)
	AddOwner(ctx context.Context, newsletterID, journalistID int64) error
	IsOwner(ctx context.Context, newsletterID, journalistID int64) (bool, error)
	Update(ctx context.Context, newsletter *domain.Newsletter) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, journalistID int64) ([]domain.Newsletter, error)
	ListAll(ctx context.Context) ([]domain.Newsletter, error)
	ListSubscribed(ctx context.Context, readerID int64) ([]domain.Newsletter, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer broadcasts one message to the full recipient list in a single call.
type Mailer interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}

// SocialPoster submits a bounded-length post and returns its external id.
type SocialPoster interface {
	Post(ctx context.Context, text string) (string, error)
}

// EventPublisher emits approval events to the broker. Optional: services
// must tolerate a nil publisher.
type EventPublisher interface {
	PublishApproval(ctx context.Context, article *domain.Article) error
	Close() error
}

// Notifier is the approval fan-out pipeline. Implementations never return
// errors to the caller; channel failures are logged and swallowed.
type Notifier interface {
	ArticleApproved(ctx context.Context, article *domain.Article)
	PostSocial(ctx context.Context, article *domain.Article)
}
