package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"newsroom/internal/domain"
)

// ArticleInput carries the caller-editable article fields.
type ArticleInput struct {
	Title       string
	Body        string
	PublisherID int64
}

func (in ArticleInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: body is required", domain.ErrValidation)
	}
	if in.PublisherID == 0 {
		return fmt.Errorf("%w: publisher_id is required", domain.ErrValidation)
	}
	return nil
}

// NewsletterInput carries the caller-editable newsletter fields.
type NewsletterInput struct {
	Title       string
	Body        string
	PublisherID int64
}

func (in NewsletterInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: body is required", domain.ErrValidation)
	}
	if in.PublisherID == 0 {
		return fmt.Errorf("%w: publisher_id is required", domain.ErrValidation)
	}
	return nil
}

// ContentService owns article and newsletter lifecycles: guarded CRUD, the
// one-way approval transition, and the visibility-checked reads.
type ContentService struct {
	users       UserStore
	publishers  PublisherStore
	articles    ArticleStore
	newsletters NewsletterStore
	txManager   TransactionManager
	notifier    Notifier
	logger      *slog.Logger
}

func NewContentService(
	users UserStore,
	publishers PublisherStore,
	articles ArticleStore,
	newsletters NewsletterStore,
	txManager TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
) *ContentService {
	return &ContentService{
		users:       users,
		publishers:  publishers,
		articles:    articles,
		newsletters: newsletters,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger.With("component", "content"),
	}
}

func (s *ContentService) CreateArticle(ctx context.Context, actor *domain.User, in ArticleInput) (*domain.Article, error) {
	if err := canCreateContent(actor); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.publishers.Get(ctx, in.PublisherID); err != nil {
		return nil, fmt.Errorf("lookup publisher: %w", err)
	}

	article := &domain.Article{
		Title:        in.Title,
		Body:         in.Body,
		Approved:     false,
		PublisherID:  in.PublisherID,
		JournalistID: actor.ID,
	}
	if _, err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.logger.Info("article created",
		"article_id", article.ID,
		"journalist_id", actor.ID,
		"publisher_id", article.PublisherID,
	)
	return article, nil
}

func (s *ContentService) UpdateArticle(ctx context.Context, actor *domain.User, id int64, in ArticleInput) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModifyArticle(actor, article); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.PublisherID != article.PublisherID {
		if _, err := s.publishers.Get(ctx, in.PublisherID); err != nil {
			return nil, fmt.Errorf("lookup publisher: %w", err)
		}
	}

	article.Title = in.Title
	article.Body = in.Body
	article.PublisherID = in.PublisherID
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

func (s *ContentService) DeleteArticle(ctx context.Context, actor *domain.User, id int64) error {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := canModifyArticle(actor, article); err != nil {
		return err
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.logger.Info("article deleted", "article_id", id, "actor_id", actor.ID)
	return nil
}

// ApproveArticle runs the pending-to-approved transition. Approving an
// already-approved article succeeds without side effects; the fan-out fires
// only when this call performed the flip, which the store guarantees happens
// for at most one of any concurrent duplicates.
func (s *ContentService) ApproveArticle(ctx context.Context, actor *domain.User, id int64) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canApprove(actor); err != nil {
		return nil, err
	}

	transitioned, err := s.articles.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve article: %w", err)
	}
	article.Approved = true

	if transitioned {
		s.logger.Info("article approved",
			"article_id", id,
			"editor_id", actor.ID,
		)
		s.notifier.ArticleApproved(ctx, article)
	}

	return article, nil
}

// ShareArticle re-runs the social-post step on demand. Only approved
// articles may be shared; the post itself stays best-effort.
func (s *ContentService) ShareArticle(ctx context.Context, actor *domain.User, id int64) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return err
	}
	if !article.Approved {
		return fmt.Errorf("%w: article is not approved", domain.ErrValidation)
	}

	s.notifier.PostSocial(ctx, article)
	return nil
}

func (s *ContentService) GetArticle(ctx context.Context, actor *domain.User, id int64) (*domain.Article, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var subscribedPublisher, subscribedJournalist bool
	if actor.Role == domain.RoleReader {
		subscribedPublisher, err = s.users.IsSubscribedToPublisher(ctx, actor.ID, article.PublisherID)
		if err != nil {
			return nil, fmt.Errorf("check publisher subscription: %w", err)
		}
		subscribedJournalist, err = s.users.IsSubscribedToJournalist(ctx, actor.ID, article.JournalistID)
		if err != nil {
			return nil, fmt.Errorf("check journalist subscription: %w", err)
		}
	}

	if err := canViewArticle(actor, article, subscribedPublisher, subscribedJournalist); err != nil {
		return nil, err
	}
	return article, nil
}

// ListArticles resolves the role-dependent listing: journalists see their
// own work, editors see everything, readers see their approved subscribed
// set, anything else is empty.
func (s *ContentService) ListArticles(ctx context.Context, actor *domain.User) ([]domain.Article, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleJournalist:
		return s.articles.ListByJournalist(ctx, actor.ID)
	case domain.RoleEditor:
		return s.articles.ListAll(ctx)
	case domain.RoleReader:
		return s.articles.ListApprovedForReader(ctx, actor.ID)
	default:
		return nil, nil
	}
}

// ListPendingArticles is the editor review queue.
func (s *ContentService) ListPendingArticles(ctx context.Context, actor *domain.User) ([]domain.Article, error) {
	if err := canApprove(actor); err != nil {
		return nil, err
	}
	return s.articles.ListPending(ctx)
}

// SubscribedFeed backs the read API: the reader's visible approved set with
// publisher and journalist names. Authenticated non-readers get an empty
// set, not an error.
func (s *ContentService) SubscribedFeed(ctx context.Context, actor *domain.User) ([]domain.ArticleSummary, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	if actor.Role != domain.RoleReader {
		return []domain.ArticleSummary{}, nil
	}
	feed, err := s.articles.ListSubscribed(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list subscribed articles: %w", err)
	}
	if feed == nil {
		feed = []domain.ArticleSummary{}
	}
	return feed, nil
}

func (s *ContentService) CreateNewsletter(ctx context.Context, actor *domain.User, in NewsletterInput) (*domain.Newsletter, error) {
	if err := canCreateContent(actor); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.publishers.Get(ctx, in.PublisherID); err != nil {
		return nil, fmt.Errorf("lookup publisher: %w", err)
	}

	newsletter := &domain.Newsletter{
		Title:       in.Title,
		Body:        in.Body,
		PublisherID: in.PublisherID,
	}

	// Creation and ownership membership land atomically.
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.newsletters.Create(txCtx, newsletter); err != nil {
			return fmt.Errorf("create newsletter: %w", err)
		}
		if err := s.newsletters.AddOwner(txCtx, newsletter.ID, actor.ID); err != nil {
			return fmt.Errorf("record ownership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("newsletter created",
		"newsletter_id", newsletter.ID,
		"journalist_id", actor.ID,
	)
	return newsletter, nil
}

func (s *ContentService) UpdateNewsletter(ctx context.Context, actor *domain.User, id int64, in NewsletterInput) (*domain.Newsletter, error) {
	newsletter, err := s.newsletters.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.newsletterOwnership(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := canModifyNewsletter(actor, owner); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.PublisherID != newsletter.PublisherID {
		if _, err := s.publishers.Get(ctx, in.PublisherID); err != nil {
			return nil, fmt.Errorf("lookup publisher: %w", err)
		}
	}

	newsletter.Title = in.Title
	newsletter.Body = in.Body
	newsletter.PublisherID = in.PublisherID
	if err := s.newsletters.Update(ctx, newsletter); err != nil {
		return nil, fmt.Errorf("update newsletter: %w", err)
	}
	return newsletter, nil
}

func (s *ContentService) DeleteNewsletter(ctx context.Context, actor *domain.User, id int64) error {
	if _, err := s.newsletters.Get(ctx, id); err != nil {
		return err
	}
	owner, err := s.newsletterOwnership(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := canModifyNewsletter(actor, owner); err != nil {
		return err
	}
	if err := s.newsletters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete newsletter: %w", err)
	}

	s.logger.Info("newsletter deleted", "newsletter_id", id, "actor_id", actor.ID)
	return nil
}

func (s *ContentService) GetNewsletter(ctx context.Context, actor *domain.User, id int64) (*domain.Newsletter, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	newsletter, err := s.newsletters.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.newsletterOwnership(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var subscribedPublisher bool
	if actor.Role == domain.RoleReader {
		subscribedPublisher, err = s.users.IsSubscribedToPublisher(ctx, actor.ID, newsletter.PublisherID)
		if err != nil {
			return nil, fmt.Errorf("check publisher subscription: %w", err)
		}
	}

	if err := canViewNewsletter(actor, owner, subscribedPublisher); err != nil {
		return nil, err
	}
	return newsletter, nil
}

func (s *ContentService) ListNewsletters(ctx context.Context, actor *domain.User) ([]domain.Newsletter, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleJournalist:
		return s.newsletters.ListByOwner(ctx, actor.ID)
	case domain.RoleEditor:
		return s.newsletters.ListAll(ctx)
	case domain.RoleReader:
		return s.newsletters.ListSubscribed(ctx, actor.ID)
	default:
		return nil, nil
	}
}

// Publisher management is editor territory; there is no admin surface.

func (s *ContentService) CreatePublisher(ctx context.Context, actor *domain.User, name string) (*domain.Publisher, error) {
	if err := canApprove(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	id, err := s.publishers.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}
	return &domain.Publisher{ID: id, Name: name}, nil
}

func (s *ContentService) DeletePublisher(ctx context.Context, actor *domain.User, id int64) error {
	if err := canApprove(actor); err != nil {
		return err
	}
	if err := s.publishers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete publisher: %w", err)
	}
	s.logger.Info("publisher deleted", "publisher_id", id, "actor_id", actor.ID)
	return nil
}

func (s *ContentService) ListPublishers(ctx context.Context, actor *domain.User) ([]domain.Publisher, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.publishers.List(ctx)
}

func (s *ContentService) newsletterOwnership(ctx context.Context, actor *domain.User, newsletterID int64) (bool, error) {
	if actor == nil || actor.Role != domain.RoleJournalist {
		return false, nil
	}
	owner, err := s.newsletters.IsOwner(ctx, newsletterID, actor.ID)
	if err != nil {
		return false, fmt.Errorf("check newsletter ownership: %w", err)
	}
	return owner, nil
}
