package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/internal/domain"
)

func TestCanCreateContent(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		wantErr error
	}{
		{name: "nil actor", wantErr: domain.ErrUnauthenticated},
		{name: "journalist", actor: &domain.User{Role: domain.RoleJournalist}},
		{name: "editor", actor: &domain.User{Role: domain.RoleEditor}, wantErr: domain.ErrForbidden},
		{name: "reader", actor: &domain.User{Role: domain.RoleReader}, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canCreateContent(tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanModifyArticle(t *testing.T) {
	article := &domain.Article{ID: 5, JournalistID: 2}

	tests := []struct {
		name    string
		actor   *domain.User
		wantErr error
	}{
		{name: "nil actor", wantErr: domain.ErrUnauthenticated},
		{name: "owner journalist", actor: &domain.User{ID: 2, Role: domain.RoleJournalist}},
		{name: "other journalist", actor: &domain.User{ID: 9, Role: domain.RoleJournalist}, wantErr: domain.ErrForbidden},
		{name: "editor", actor: &domain.User{ID: 3, Role: domain.RoleEditor}},
		{name: "reader", actor: &domain.User{ID: 1, Role: domain.RoleReader}, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canModifyArticle(tt.actor, article)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanModifyNewsletter(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		owner   bool
		wantErr error
	}{
		{name: "nil actor", wantErr: domain.ErrUnauthenticated},
		{name: "owner journalist", actor: &domain.User{Role: domain.RoleJournalist}, owner: true},
		{name: "non-owner journalist", actor: &domain.User{Role: domain.RoleJournalist}, wantErr: domain.ErrForbidden},
		{name: "editor", actor: &domain.User{Role: domain.RoleEditor}},
		{name: "reader", actor: &domain.User{Role: domain.RoleReader}, owner: true, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canModifyNewsletter(tt.actor, tt.owner)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanApprove(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		wantErr error
	}{
		{name: "nil actor", wantErr: domain.ErrUnauthenticated},
		{name: "editor", actor: &domain.User{Role: domain.RoleEditor}},
		{name: "journalist", actor: &domain.User{Role: domain.RoleJournalist}, wantErr: domain.ErrForbidden},
		{name: "reader", actor: &domain.User{Role: domain.RoleReader}, wantErr: domain.ErrForbidden},
		{name: "unknown role", actor: &domain.User{Role: domain.Role("admin")}, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canApprove(tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
