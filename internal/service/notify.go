package service

import (
	"context"
	"log/slog"

	"newsroom/internal/domain"
)

// socialSnippetLen is how much of the article body survives into the social
// post before the ellipsis. Title and framing on top stay well inside the
// network's 280-character limit.
const socialSnippetLen = 200

// FanOutNotifier delivers approval notifications over three channels: email
// broadcast, social post, and a broker event. Channels are isolated; a
// failure in one is logged and never stops the others, and nothing here can
// fail the approval that triggered it. Callers invoke ArticleApproved only
// on an observed pending-to-approved transition, so one approval fans out
// exactly once.
type FanOutNotifier struct {
	users  UserStore
	mailer Mailer
	social SocialPoster
	events EventPublisher
	logger *slog.Logger
}

func NewFanOutNotifier(
	users UserStore,
	mailer Mailer,
	social SocialPoster,
	events EventPublisher,
	logger *slog.Logger,
) *FanOutNotifier {
	return &FanOutNotifier{
		users:  users,
		mailer: mailer,
		social: social,
		events: events,
		logger: logger.With("component", "notifier"),
	}
}

func (n *FanOutNotifier) ArticleApproved(ctx context.Context, article *domain.Article) {
	n.sendEmails(ctx, article)
	n.PostSocial(ctx, article)
	n.publishEvent(ctx, article)
}

func (n *FanOutNotifier) sendEmails(ctx context.Context, article *domain.Article) {
	recipients, err := n.users.SubscriberEmails(ctx, article.PublisherID, article.JournalistID)
	if err != nil {
		n.logger.Error("resolve recipients failed",
			"article_id", article.ID,
			"error", err,
		)
		return
	}

	if len(recipients) == 0 {
		n.logger.Debug("no subscribers to notify", "article_id", article.ID)
		return
	}

	subject := "New Article Published: " + article.Title
	if err := n.mailer.Send(ctx, subject, article.Body, recipients); err != nil {
		n.logger.Error("email broadcast failed",
			"article_id", article.ID,
			"recipients", len(recipients),
			"error", err,
		)
		return
	}

	n.logger.Info("email broadcast sent",
		"article_id", article.ID,
		"recipients", len(recipients),
	)
}

func (n *FanOutNotifier) PostSocial(ctx context.Context, article *domain.Article) {
	text := composePost(article.Title, article.Body)

	postID, err := n.social.Post(ctx, text)
	if err != nil {
		n.logger.Error("social post failed",
			"article_id", article.ID,
			"error", err,
		)
		return
	}

	n.logger.Info("social post published",
		"article_id", article.ID,
		"post_id", postID,
	)
}

func (n *FanOutNotifier) publishEvent(ctx context.Context, article *domain.Article) {
	if n.events == nil {
		return
	}

	if err := n.events.PublishApproval(ctx, article); err != nil {
		n.logger.Error("approval event publish failed",
			"article_id", article.ID,
			"error", err,
		)
		return
	}

	n.logger.Debug("approval event published", "article_id", article.ID)
}

func composePost(title, body string) string {
	snippet := body
	if runes := []rune(body); len(runes) > socialSnippetLen {
		snippet = string(runes[:socialSnippetLen]) + "..."
	}
	return "New Article Published!\n\n" + title + "\n\n" + snippet
}
