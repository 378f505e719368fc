package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/auth"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// Logger is the logging interface used by the middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth validates the Bearer token and injects the authenticated identity
// into the request context.
type Auth struct {
	tokens *auth.TokenManager
	logger Logger
}

// NewAuth creates the auth middleware
func NewAuth(tokens *auth.TokenManager, logger Logger) *Auth {
	return &Auth{tokens: tokens, logger: logger}
}

// Require rejects requests without a valid token
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.authenticate(r)
		if !ok {
			handlers.RespondUnauthorized(w, "missing or invalid access token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAuthUser(r.Context(), user)))
	})
}

// Optional injects the identity when a valid token is present, and passes
// the request through anonymously otherwise. Public pages use it so owners
// can see their own unapproved venues.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := a.authenticate(r); ok {
			r = r.WithContext(WithAuthUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) authenticate(r *http.Request) (domain.AuthUser, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return domain.AuthUser{}, false
	}

	claims, err := a.tokens.ParseValidate(token)
	if err != nil {
		a.logger.Warn("auth: token rejected: %v", err)
		return domain.AuthUser{}, false
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		a.logger.Warn("auth: token carries unknown role %q", claims.Role)
		return domain.AuthUser{}, false
	}

	return domain.AuthUser{
		ID:    claims.UserID,
		Role:  role,
		Email: claims.Email,
	}, true
}

// RequireRole guards a route group for one or more roles.
// Role dispatch happens here, at the router boundary; handlers never
// re-check roles, only ownership.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := AuthUserFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "missing or invalid access token")
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				handlers.RespondForbidden(w, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithAuthUser stores the identity in the context
func WithAuthUser(ctx context.Context, user domain.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// AuthUserFromContext extracts the identity placed by the auth middleware
func AuthUserFromContext(ctx context.Context) (domain.AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(domain.AuthUser)
	return user, ok
}
