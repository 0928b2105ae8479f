package service

import "newsroom/internal/domain"

// Authorization table, one function per operation class. Each switch covers
// every Role; an invalid role never gets past authentication, so the default
// branch denies.

func canCreateContent(actor *domain.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleJournalist:
		return nil
	case domain.RoleEditor, domain.RoleReader:
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}

func canModifyArticle(actor *domain.User, article *domain.Article) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleJournalist:
		if article.JournalistID != actor.ID {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleEditor:
		return nil
	case domain.RoleReader:
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}

// canModifyNewsletter takes ownership as a resolved fact because newsletter
// ownership lives in a membership table, not on the entity.
func canModifyNewsletter(actor *domain.User, owner bool) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleJournalist:
		if !owner {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleEditor:
		return nil
	case domain.RoleReader:
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}

// canApprove also gates the pending-review queue and role management:
// editor-only operations.
func canApprove(actor *domain.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleEditor:
		return nil
	case domain.RoleJournalist, domain.RoleReader:
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}
