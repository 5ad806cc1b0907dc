package websvc

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mkrupp/catcafe-web/internal/domain"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
	http_ "github.com/mkrupp/catcafe-web/internal/infra/transport/http"
	"github.com/mkrupp/catcafe-web/internal/svc/accountsvc"
	"github.com/mkrupp/catcafe-web/internal/svc/sessionsvc"
)

// loginFailedMessage is the single user-visible message for every login
// failure. Unknown username and wrong password must be indistinguishable.
const loginFailedMessage = "User does not exist, or invalid username or password."

const registeredMessage = "Registration complete, please log in."

// HTTPTransportConfig contains configuration parameters for the HTTP transport layer.
type HTTPTransportConfig struct {
	http_.HTTPTransportConfig
}

// HTTPTransport handles the site's HTTP requests: the registration and
// login forms, logout, and the content pages.
type HTTPTransport struct {
	accounts  *accountsvc.AccountService
	sessions  *sessionsvc.SessionService
	log       logging.Logger
	cfg       HTTPTransportConfig
	router    *mux.Router
	templates map[string]*template.Template
}

var _ http_.HTTPTransport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a new HTTPTransport instance with the given
// configuration. It requires the account directory for registration and the
// session authenticator for login state.
// Returns an error if the page templates fail to parse.
func NewHTTPTransport(
	accounts *accountsvc.AccountService,
	sessions *sessionsvc.SessionService,
	cfg HTTPTransportConfig,
) (*HTTPTransport, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	ht := &HTTPTransport{
		accounts:  accounts,
		sessions:  sessions,
		log:       logging.GetLogger("svc.websvc.http_transport"),
		cfg:       cfg,
		router:    mux.NewRouter(),
		templates: templates,
	}

	ht.router.HandleFunc("/register", ht.HandleRegister).Methods(http.MethodGet, http.MethodPost)
	ht.router.HandleFunc("/login", ht.HandleLogin).Methods(http.MethodGet, http.MethodPost)
	ht.router.HandleFunc("/logout", ht.HandleLogout).Methods(http.MethodGet, http.MethodPost)
	ht.router.HandleFunc("/", ht.HandleIndex).Methods(http.MethodGet)
	ht.router.HandleFunc("/Shop", ht.HandleShop).Methods(http.MethodGet)
	ht.router.HandleFunc("/Contact", ht.HandleContact).Methods(http.MethodGet)
	ht.router.HandleFunc("/Guide", ht.HandleGuide).Methods(http.MethodGet)
	ht.router.NotFoundHandler = http.HandlerFunc(ht.HandleNotFound)

	return ht, nil
}

// ServeHTTP implements http.Handler by delegating to the router.
func (ht *HTTPTransport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ht.router.ServeHTTP(w, r)
}

// HandleRegister serves the registration form and processes submissions.
// A valid submission creates the account and redirects to the login page;
// the new user is not logged in automatically. Validation failures
// re-render the form with field-scoped messages and the non-sensitive
// inputs preserved.
func (ht *HTTPTransport) HandleRegister(w http.ResponseWriter, r *http.Request) {
	_ = ht.handleRegister(w, r)
}

func (ht *HTTPTransport) handleRegister(w http.ResponseWriter, r *http.Request) (err error) {
	log := ht.log.With(logging.Group("http", "method", r.Method, "url", r.URL.String()))

	defer func(ctx context.Context) {
		if err != nil {
			log.WarnContext(ctx, "register failed", "error", err)
		}
	}(r.Context())

	if r.Method == http.MethodGet {
		ht.render(w, r, http.StatusOK, "register", &pageData{
			Title: "Register",
			Form:  map[string]string{},
		})

		return nil
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return fmt.Errorf("parse form: %w", err)
	}

	var (
		username = r.PostFormValue("username")
		email    = r.PostFormValue("email")
		password = r.PostFormValue("password")
	)

	_, err = ht.accounts.Register(r.Context(), username, email, password)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			ht.render(w, r, http.StatusOK, "register", &pageData{
				Title:  "Register",
				Form:   map[string]string{"username": username, "email": email},
				Errors: fieldErrorMap(verr),
			})

			return fmt.Errorf("register user: %w", err)
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return fmt.Errorf("register user: %w", err)
	}

	ht.sessions.Flash(w, r, registeredMessage)
	http.Redirect(w, r, "/login", http.StatusSeeOther)

	return nil
}

// HandleLogin serves the login form and processes submissions. Success
// redirects to the landing page; failure re-renders the form with one
// generic flash message regardless of which half of the credentials was
// wrong.
func (ht *HTTPTransport) HandleLogin(w http.ResponseWriter, r *http.Request) {
	_ = ht.handleLogin(w, r)
}

func (ht *HTTPTransport) handleLogin(w http.ResponseWriter, r *http.Request) (err error) {
	log := ht.log.With(logging.Group("http", "method", r.Method, "url", r.URL.String()))

	defer func(ctx context.Context) {
		if err != nil {
			log.WarnContext(ctx, "login failed", "error", err)
		}
	}(r.Context())

	if r.Method == http.MethodGet {
		ht.render(w, r, http.StatusOK, "login", &pageData{
			Title: "Login",
			Form:  map[string]string{},
		})

		return nil
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return fmt.Errorf("parse form: %w", err)
	}

	var (
		username = r.PostFormValue("username")
		password = r.PostFormValue("password")
	)

	if err := ht.sessions.Login(w, r, username, password); err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return fmt.Errorf("login user: %w", err)
		}

		ht.sessions.Flash(w, r, loginFailedMessage)
		ht.render(w, r, http.StatusOK, "login", &pageData{
			Title: "Login",
			Form:  map[string]string{"username": username},
		})

		return fmt.Errorf("login user: %w", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)

	return nil
}

// HandleLogout clears the session, active or not, and redirects to the
// login page.
func (ht *HTTPTransport) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ht.sessions.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleIndex serves the landing page. No authentication is required; the
// page merely greets the current user when a session resolves.
func (ht *HTTPTransport) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ht.render(w, r, http.StatusOK, "index", &pageData{Title: "Home"})
}

// HandleShop serves the café listing page.
func (ht *HTTPTransport) HandleShop(w http.ResponseWriter, r *http.Request) {
	ht.render(w, r, http.StatusOK, "shop", &pageData{
		Title:   "Shop",
		Entries: cafeListing,
	})
}

// HandleContact serves the contact page.
func (ht *HTTPTransport) HandleContact(w http.ResponseWriter, r *http.Request) {
	ht.render(w, r, http.StatusOK, "contact", &pageData{Title: "Contact"})
}

// HandleGuide serves the visitor guide page.
func (ht *HTTPTransport) HandleGuide(w http.ResponseWriter, r *http.Request) {
	ht.render(w, r, http.StatusOK, "guide", &pageData{Title: "Guide"})
}

// HandleNotFound serves the custom error page for unmatched routes.
func (ht *HTTPTransport) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	ht.render(w, r, http.StatusNotFound, "not_found", &pageData{Title: "Not Found"})
}

func fieldErrorMap(verr *domain.ValidationError) map[string]string {
	fields := make(map[string]string, len(verr.Fields))

	for _, fe := range verr.Fields {
		if _, ok := fields[fe.Field]; !ok {
			fields[fe.Field] = fe.Message
		}
	}

	return fields
}
