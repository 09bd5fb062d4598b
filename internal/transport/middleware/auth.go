package middleware

import (
	"net/http"
	"strings"

	"github.com/annolab/annolab-backend/internal/auth"
	"github.com/annolab/annolab-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth validates a Bearer token when present and stores the caller's
// user ID and role in the request context. Requests without a token
// pass through anonymously; handlers decide what anonymity may do.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithRole(ctx, identity.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
