package server

import (
	"context"
	"net/http"
	"strings"

	"newsroom/internal/domain"
)

type userCtxKey struct{}

// authenticate resolves "Authorization: Token <key>" to a user and stores
// it in the request context. Missing or unknown tokens end the request
// with 401.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := strings.Fields(r.Header.Get("Authorization"))
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Token") {
			s.writeError(w, domain.ErrUnauthenticated)
			return
		}

		user, err := s.users.Authenticate(r.Context(), fields[1])
		if err != nil {
			s.writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey{}).(*domain.User)
	return user
}
