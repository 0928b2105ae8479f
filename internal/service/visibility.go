package service

import "newsroom/internal/domain"

// Detail-view visibility. Listing queries enforce the same rules in SQL;
// these functions guard direct access to a single item, where a denial must
// be an explicit Forbidden rather than a silently filtered result.

func canViewArticle(actor *domain.User, article *domain.Article, subscribedPublisher, subscribedJournalist bool) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleEditor:
		return nil
	case domain.RoleJournalist:
		if article.JournalistID != actor.ID {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleReader:
		if !article.Approved {
			return domain.ErrForbidden
		}
		if !subscribedPublisher && !subscribedJournalist {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}

func canViewNewsletter(actor *domain.User, owner, subscribedPublisher bool) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleEditor:
		return nil
	case domain.RoleJournalist:
		if !owner {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleReader:
		// No approval gate: newsletters have none. No journalist path
		// either, since newsletters carry no journalist reference.
		if !subscribedPublisher {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
