package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"wayfarer/models"
	"wayfarer/store"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// Context keys
type ContextKey string

const UserKey ContextKey = "user"

// UserFinder is the single storage lookup the identity resolver performs.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Auth resolves bearer tokens to persisted users. It gates every protected
// route: one token verification and at most one user lookup per request,
// with the resolved user stored in the request context so handlers never
// resolve twice.
type Auth struct {
	tokens *TokenService
	users  UserFinder
}

func NewAuth(tokens *TokenService, users UserFinder) *Auth {
	return &Auth{tokens: tokens, users: users}
}

func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := bearerToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		userID, err := a.tokens.Verify(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Token has expired")
				return
			}
			utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		user, err := a.users.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next(w, r.WithContext(ctx), ps)
	}
}

// UserFromContext returns the user resolved by Authenticate, or nil on an
// unauthenticated request.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
