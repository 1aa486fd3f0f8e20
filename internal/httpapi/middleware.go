package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/nikolayk812/foodorder-demo/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// Identity reads the caller identity from request headers. Authentication
// itself happens upstream; the service trusts whatever the gateway forwards.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := domain.User{
			ID:    strings.TrimSpace(r.Header.Get("X-User-Id")),
			Name:  strings.TrimSpace(r.Header.Get("X-User-Name")),
			Email: strings.TrimSpace(r.Header.Get("X-User-Email")),
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) domain.User {
	user, _ := ctx.Value(userKey).(domain.User)
	return user
}
