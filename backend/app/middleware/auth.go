package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "hanviet-cards/backend/app/jwt"
	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/services"
)

type ctxKey int

const userKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.UserService
}

// RequireAuth parses the bearer token and resolves its subject to a live
// user row. A token whose user has since been deleted is rejected as
// unauthenticated.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := a.authenticate(r)
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	})
}

// RequireAdmin checks role on the freshly loaded row, not on token claims.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := a.authenticate(r)
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		if !u.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	})
}

func (a *Auth) authenticate(r *http.Request) (*models.User, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, false
	}
	claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return nil, false
	}
	u, err := a.Users.ValidateUser(claims.UserID)
	if err != nil || u == nil {
		return nil, false
	}
	return u, true
}

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUser returns the authenticated user, or nil outside guarded routes.
func GetUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
