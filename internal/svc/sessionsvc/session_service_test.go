package sessionsvc_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkrupp/catcafe-web/internal/domain"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
	"github.com/mkrupp/catcafe-web/internal/svc/sessionsvc"
)

// mockUserRepository implements user.Repository for testing.
type mockUserRepository struct {
	users  map[int64]*domain.User
	nextID int64
	err    error
	m      sync.Mutex
}

func newMockUserRepo() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

func (m *mockUserRepository) Insert(
	_ context.Context,
	username, email string,
	passwordHash []byte,
) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()

	if m.err != nil {
		return 0, m.err
	}

	id := m.nextID
	m.nextID++
	m.users[id] = &domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}

	return id, nil
}

func (m *mockUserRepository) FindByUsername(_ context.Context, username string) (*domain.User, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, true, nil
		}
	}

	return nil, false, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, true, nil
		}
	}

	return nil, false, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(_ context.Context, id int64) (*domain.User, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, true, nil
	}

	return nil, false, domain.ErrUserNotFound
}

func (m *mockUserRepository) Close() error {
	return m.err
}

func setupTestService(t *testing.T) (*sessionsvc.SessionService, *mockUserRepository) {
	t.Helper()

	mockRepo := newMockUserRepo()
	svc := sessionsvc.NewSessionService(mockRepo, sessionsvc.SessionConfig{
		SecretKey:  "test-secret",
		CookieName: "test_session",
		MaxAge:     3600,
	})
	svc.Log = logging.NewNopLogger()

	return svc, mockRepo
}

func registerUser(t *testing.T, repo *mockUserRepository, username, email, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	id, err := repo.Insert(context.Background(), username, email, hash)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	return id
}

// requestWithCookies builds a request carrying the cookies a previous
// response set, simulating the browser's next page load.
func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	return r
}

func TestSessionService_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "pass1",
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "nouser",
			password: "x",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, mockRepo := setupTestService(t)
			registerUser(t, mockRepo, "alice", "alice@x.com", "pass1")

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/login", nil)

			err := svc.Login(w, r, tt.username, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Login() error = %v, want success", err)
			}

			user, ok, err := svc.CurrentUser(requestWithCookies(t, w))
			if err != nil || !ok {
				t.Fatalf("CurrentUser() = %v, %v, %v, want user", user, ok, err)
			}
			if user.Username != "alice" {
				t.Errorf("CurrentUser() username = %q, want %q", user.Username, "alice")
			}
		})
	}
}

func TestSessionService_Login_FailuresIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, mockRepo := setupTestService(t)
	registerUser(t, mockRepo, "alice", "alice@x.com", "pass1")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	wrongPassword := svc.Login(w, r, "alice", "wrong")
	unknownUser := svc.Login(w, r, "nouser", "x")

	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("login failures differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestSessionService_Logout(t *testing.T) {
	t.Parallel()

	svc, mockRepo := setupTestService(t)
	registerUser(t, mockRepo, "alice", "alice@x.com", "pass1")

	// Login first.
	loginW := httptest.NewRecorder()
	if err := svc.Login(loginW, httptest.NewRequest(http.MethodPost, "/login", nil), "alice", "pass1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// Logout with the session cookie attached.
	logoutW := httptest.NewRecorder()
	svc.Logout(logoutW, requestWithCookies(t, loginW))

	// The logout response must expire the cookie.
	cookies := logoutW.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Logout() set no cookie")
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("Logout() cookie MaxAge = %d, want negative", cookies[0].MaxAge)
	}

	// A follow-up request with the expired session resolves to anonymous.
	user, ok, err := svc.CurrentUser(requestWithCookies(t, logoutW))
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if ok || user != nil {
		t.Errorf("CurrentUser() after logout = %v, %v, want anonymous", user, ok)
	}
}

func TestSessionService_Logout_WithoutSession(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	// Logout without any session must not fail.
	w := httptest.NewRecorder()
	svc.Logout(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	user, ok, err := svc.CurrentUser(requestWithCookies(t, w))
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if ok || user != nil {
		t.Errorf("CurrentUser() = %v, %v, want anonymous", user, ok)
	}
}

func TestSessionService_CurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("no cookie resolves to anonymous", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupTestService(t)

		user, ok, err := svc.CurrentUser(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil || ok || user != nil {
			t.Errorf("CurrentUser() = %v, %v, %v, want anonymous", user, ok, err)
		}
	})

	t.Run("tampered cookie resolves to anonymous", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupTestService(t)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})

		user, ok, err := svc.CurrentUser(r)
		if err != nil || ok || user != nil {
			t.Errorf("CurrentUser() = %v, %v, %v, want anonymous", user, ok, err)
		}
	})

	t.Run("session for vanished user fails closed", func(t *testing.T) {
		t.Parallel()

		svc, mockRepo := setupTestService(t)
		id := registerUser(t, mockRepo, "alice", "alice@x.com", "pass1")

		w := httptest.NewRecorder()
		if err := svc.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), "alice", "pass1"); err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		delete(mockRepo.users, id)

		user, ok, err := svc.CurrentUser(requestWithCookies(t, w))
		if err != nil || ok || user != nil {
			t.Errorf("CurrentUser() = %v, %v, %v, want anonymous", user, ok, err)
		}
	})
}

func TestSessionService_Flashes(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	w := httptest.NewRecorder()
	svc.Flash(w, httptest.NewRequest(http.MethodPost, "/login", nil), "User does not exist, or invalid username or password.")

	// The next page load sees the message once.
	readW := httptest.NewRecorder()
	messages := svc.Flashes(readW, requestWithCookies(t, w))

	if len(messages) != 1 {
		t.Fatalf("Flashes() = %v, want one message", messages)
	}

	// After being read the flash is cleared.
	again := svc.Flashes(httptest.NewRecorder(), requestWithCookies(t, readW))
	if len(again) != 0 {
		t.Errorf("Flashes() after read = %v, want none", again)
	}
}
