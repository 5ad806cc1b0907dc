package http

import (
	"net/http"

	"github.com/mkrupp/catcafe-web/internal/domain"
	context_ "github.com/mkrupp/catcafe-web/internal/infra/context"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
)

// UserResolver resolves the user behind the session cookie of a request.
// A request without a live session resolves to nil and false.
type UserResolver interface {
	CurrentUser(r *http.Request) (*domain.User, bool, error)
}

// CurrentUserMiddleware creates middleware that resolves the current user
// from the request's session and stores it in the request context. It never
// rejects a request: resolution failures degrade to an anonymous request so
// that public pages keep working.
func CurrentUserMiddleware(
	next http.Handler,
	resolver UserResolver,
	log logging.Logger,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok, err := resolver.CurrentUser(r)
		if err != nil {
			log.DebugContext(r.Context(), "resolve current user failed", "error", err)
		}

		if ok {
			r = r.WithContext(context_.WithCurrentUser(r.Context(), user))
		}

		next.ServeHTTP(w, r)
	})
}
