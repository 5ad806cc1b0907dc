package sessionsvc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkrupp/catcafe-web/internal/domain"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
	httpinfra "github.com/mkrupp/catcafe-web/internal/infra/transport/http"
	"github.com/mkrupp/catcafe-web/internal/repo/user"
)

const sessionKeyUserID = "user_id"

// SessionConfig contains configuration parameters for the session authenticator.
type SessionConfig struct {
	// SecretKey authenticates the session cookie. Override it outside development.
	SecretKey string `env:"SECRET_KEY" default:"dev-only-secret-change-me"`

	// CookieName is the name of the session cookie
	CookieName string `env:"COOKIE_NAME" default:"catcafe_session"`

	// MaxAge is the session lifetime in seconds
	MaxAge int `env:"MAX_AGE" default:"3600"` // 1h
}

// SessionService is the session authenticator: it verifies credentials
// against the user repository and manages the cookie-backed session
// lifecycle, including one-time flash messages.
type SessionService struct {
	Config   SessionConfig
	UserRepo user.Repository
	Log      logging.Logger

	store sessions.Store
}

var _ httpinfra.UserResolver = (*SessionService)(nil)

// NewSessionService creates a new SessionService over the given user
// repository. Sessions are stored client-side in an authenticated cookie.
func NewSessionService(userRepo user.Repository, cfg SessionConfig) *SessionService {
	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionService{
		Config:   cfg,
		UserRepo: userRepo,
		Log:      logging.GetLogger("svc.sessionsvc.session_service"),
		store:    store,
	}
}

// Login verifies the credentials and, on success, binds the session cookie
// to the user's identifier. Every failure mode returns the same
// domain.ErrInvalidCredentials so responses cannot be used to probe which
// usernames exist. Repeated successful logins simply re-establish the
// session.
func (s *SessionService) Login(
	w http.ResponseWriter,
	r *http.Request,
	username, password string,
) (err error) {
	ctx := r.Context()
	log := s.Log.With(logging.Group("user", "username", username))

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "login failed", "error", err)
		} else {
			log.DebugContext(ctx, "login successful")
		}
	}()

	found, ok, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}

		return fmt.Errorf("find user: %w", err)
	} else if !ok {
		return domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}

	sess := s.session(r)
	sess.Values[sessionKeyUserID] = found.ID

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Logout clears the session and expires its cookie. It always succeeds,
// whether or not a session was active.
func (s *SessionService) Logout(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	for key := range sess.Values {
		delete(sess.Values, key)
	}

	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		s.Log.WarnContext(r.Context(), "expire session failed", "error", err)
	}
}

// CurrentUser resolves the request's session cookie to a user record.
// Anything short of a live session backed by an existing user resolves to
// anonymous (nil, false); only infrastructure failures surface as errors.
func (s *SessionService) CurrentUser(r *http.Request) (*domain.User, bool, error) {
	sess, err := s.store.Get(r, s.Config.CookieName)
	if err != nil {
		// Undecodable or tampered cookie: treat as anonymous.
		return nil, false, nil
	}

	userID, ok := sess.Values[sessionKeyUserID].(int64)
	if !ok {
		return nil, false, nil
	}

	found, ok, err := s.UserRepo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("find user: %w", err)
	} else if !ok {
		return nil, false, nil
	}

	return found, true, nil
}

// Flash queues a one-time message on the session. It is shown by the next
// page that collects flashes and cleared afterwards.
func (s *SessionService) Flash(w http.ResponseWriter, r *http.Request, message string) {
	sess := s.session(r)
	sess.AddFlash(message)

	if err := sess.Save(r, w); err != nil {
		s.Log.WarnContext(r.Context(), "save flash failed", "error", err)
	}
}

// Flashes returns the queued one-time messages and clears them.
func (s *SessionService) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess := s.session(r)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	// Reading flashes mutates the session; persist the cleared state.
	if err := sess.Save(r, w); err != nil {
		s.Log.WarnContext(r.Context(), "clear flashes failed", "error", err)
	}

	messages := make([]string, 0, len(raw))

	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}

	return messages
}

// session returns the request's session, or a fresh one when the cookie is
// missing or fails to decode.
func (s *SessionService) session(r *http.Request) *sessions.Session {
	sess, err := s.store.Get(r, s.Config.CookieName)
	if err != nil || sess == nil {
		sess, _ = s.store.New(r, s.Config.CookieName)
	}

	return sess
}
