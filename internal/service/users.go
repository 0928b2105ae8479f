package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"newsroom/internal/domain"
)

// UserService owns identities, role assignment, and reader subscriptions.
type UserService struct {
	users      UserStore
	publishers PublisherStore
	txManager  TransactionManager
	logger     *slog.Logger
}

func NewUserService(
	users UserStore,
	publishers PublisherStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:      users,
		publishers: publishers,
		txManager:  txManager,
		logger:     logger.With("component", "users"),
	}
}

// Authenticate resolves an API token to its user. Any lookup miss is an
// authentication failure, not a NotFound.
func (s *UserService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Register creates a user with the given role and issues an opaque API
// token. Credential mechanics beyond the token are out of scope.
func (s *UserService) Register(ctx context.Context, username, email string, role domain.Role) (*domain.User, string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, "", fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user := &domain.User{Username: username, Email: email, Role: role}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	token := uuid.NewString()
	if err := s.users.IssueToken(ctx, id, token); err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", id, "role", role)
	return user, token, nil
}

// ChangeRole reassigns a user's role and clears the sets the new role makes
// irrelevant, in one transaction. Reassigning the current role is a safe
// no-op apart from re-running the clears. Editor-only.
func (s *UserService) ChangeRole(ctx context.Context, actor *domain.User, userID int64, role domain.Role) (*domain.User, error) {
	if err := canApprove(actor); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.users.SetRole(txCtx, userID, role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		switch role {
		case domain.RoleReader:
			if err := s.users.ClearOwnedNewsletters(txCtx, userID); err != nil {
				return fmt.Errorf("clear owned newsletters: %w", err)
			}
		case domain.RoleJournalist:
			if err := s.users.ClearSubscriptions(txCtx, userID); err != nil {
				return fmt.Errorf("clear subscriptions: %w", err)
			}
		case domain.RoleEditor:
			// Editors keep nothing role-specific; nothing to clear.
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.Role = role
	s.logger.Info("role changed",
		"user_id", userID,
		"role", role,
		"actor_id", actor.ID,
	)
	return user, nil
}

// SubscribeToPublisher is reader-only and idempotent: subscribing twice
// leaves a single subscription.
func (s *UserService) SubscribeToPublisher(ctx context.Context, actor *domain.User, publisherID int64) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if actor.Role != domain.RoleReader {
		return domain.ErrForbidden
	}
	if _, err := s.publishers.Get(ctx, publisherID); err != nil {
		return fmt.Errorf("lookup publisher: %w", err)
	}
	if err := s.users.SubscribeToPublisher(ctx, actor.ID, publisherID); err != nil {
		return fmt.Errorf("subscribe to publisher: %w", err)
	}
	return nil
}

// SubscribeToJournalist is reader-only; the target must exist and hold the
// journalist role, otherwise it is NotFound.
func (s *UserService) SubscribeToJournalist(ctx context.Context, actor *domain.User, journalistID int64) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if actor.Role != domain.RoleReader {
		return domain.ErrForbidden
	}
	target, err := s.users.GetByID(ctx, journalistID)
	if err != nil {
		return fmt.Errorf("lookup journalist: %w", err)
	}
	if target.Role != domain.RoleJournalist {
		return domain.ErrNotFound
	}
	if err := s.users.SubscribeToJournalist(ctx, actor.ID, journalistID); err != nil {
		return fmt.Errorf("subscribe to journalist: %w", err)
	}
	return nil
}
