package context

import (
	"context"

	"github.com/mkrupp/catcafe-web/internal/domain"
)

const contextKeyCurrentUser = contextKey("currentUser")

// CurrentUserFromContext extracts the resolved user from the context.
// Returns the user and true when the request carries an authenticated
// session, or nil and false for anonymous requests.
func CurrentUserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKeyCurrentUser).(*domain.User)

	return user, ok && user != nil
}

// WithCurrentUser creates a new context carrying the resolved user of the
// current request. Handlers read the user from here instead of consulting
// session state themselves.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKeyCurrentUser, user)
}
