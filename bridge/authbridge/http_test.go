package authbridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskward/taskward/bridge/authbridge"
	"github.com/taskward/taskward/bridge/scaffolding/mid"
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/logger"
)

// ============================================================================
// Stubbed Stores
// ============================================================================

type stubUserStore struct {
	mu        sync.Mutex
	seq       int
	users     map[string]usersrepo.User // keyed by username
	lookupErr error                     // when set, GetByUsername fails with it
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]usersrepo.User)}
}

func (s *stubUserStore) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[input.Username]; exists {
		return usersrepo.User{}, usersrepo.ErrUsernameTaken
	}

	s.seq++
	user := usersrepo.User{
		UserID:       fmt.Sprintf("user-%d", s.seq),
		Username:     input.Username,
		PasswordHash: input.PasswordHash,
		IsAdmin:      input.IsAdmin,
		CreatedAt:    time.Now(),
	}
	s.users[input.Username] = user

	return user, nil
}

func (s *stubUserStore) GetByID(ctx context.Context, userID string) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return usersrepo.User{}, usersrepo.ErrNotFound
}

func (s *stubUserStore) GetByUsername(ctx context.Context, username string) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lookupErr != nil {
		return usersrepo.User{}, s.lookupErr
	}

	user, exists := s.users[username]
	if !exists {
		return usersrepo.User{}, usersrepo.ErrNotFound
	}
	return user, nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionsrepo.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]sessionsrepo.Session)}
}

func (s *stubSessionStore) Create(ctx context.Context, input sessionsrepo.CreateSession) (sessionsrepo.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := sessionsrepo.Session{
		Token:     input.Token,
		UserID:    input.UserID,
		CreatedAt: time.Now(),
		ExpiresAt: input.ExpiresAt,
	}
	s.sessions[input.Token] = session

	return session, nil
}

func (s *stubSessionStore) Get(ctx context.Context, token string) (sessionsrepo.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[token]
	if !exists {
		return sessionsrepo.Session{}, sessionsrepo.ErrNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[token]; !exists {
		return sessionsrepo.ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for token, session := range s.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(s.sessions, token)
			count++
		}
	}
	return count, nil
}

// ============================================================================
// Test Harness
// ============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *stubUserStore, *stubSessionStore) {
	t.Helper()

	log := logger.NewDefault(logger.WithOutput(io.Discard))

	userStore := newStubUserStore()
	sessionStore := newStubSessionStore()

	users := usersrepo.NewRepository(log, userStore)
	sessions := sessionsrepo.NewRepository(log, sessionStore)

	app := web.NewWebHandler(
		web.WithGlobalMiddleware(
			mid.Errors(log),
			mid.Panics(),
		),
	)

	authbridge.AddHttpRoutes(app.Group(""), authbridge.Config{
		Log:          log,
		Users:        users,
		Sessions:     sessions,
		Authenticate: mid.Authenticate(log, sessions, users),
	})

	ts := httptest.NewServer(app)
	t.Cleanup(ts.Close)

	return ts, userStore, sessionStore
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body
}

// ============================================================================
// Register
// ============================================================================

func TestRegister(t *testing.T) {
	ts, userStore, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/register", `{"username":"alice","password":"secret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["message"] != "User registered successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	user, err := userStore.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user was not created: %v", err)
	}

	if user.PasswordHash == "secret" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Error("user should not be admin by default")
	}
}

func TestRegisterAdmin(t *testing.T) {
	ts, userStore, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/register", `{"username":"root","password":"secret","isAdmin":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	user, err := userStore.GetByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("user was not created: %v", err)
	}
	if !user.IsAdmin {
		t.Error("isAdmin flag was not honored at registration")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/register", `{"username":"alice","password":"secret"}`)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/register", `{"username":"alice","password":"other"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRegisterInvalidBody(t *testing.T) {
	ts, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"username": `},
		{"empty body", ``},
		{"missing username", `{"password":"secret"}`},
		{"missing password", `{"username":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/register", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
			resp.Body.Close()
		})
	}
}

// ============================================================================
// Login
// ============================================================================

func registerUser(t *testing.T, ts *httptest.Server, username, password string) {
	t.Helper()

	resp := postJSON(t, ts.URL+"/register", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("registering %s: got %d", username, resp.StatusCode)
	}
	resp.Body.Close()
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == mid.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	ts, _, sessionStore := newTestServer(t)
	registerUser(t, ts, "alice", "secret")

	resp := postJSON(t, ts.URL+"/login", `{"username":"alice","password":"secret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("no session cookie set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if cookie.Value == "" {
		t.Fatal("session cookie has no token")
	}

	if _, err := sessionStore.Get(context.Background(), cookie.Value); err != nil {
		t.Errorf("session row was not created: %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	ts, _, _ := newTestServer(t)
	registerUser(t, ts, "alice", "secret")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"alice","password":"wrong"}`},
		{"unknown user", `{"username":"nobody","password":"secret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/login", tt.body)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", resp.StatusCode)
			}
			if sessionCookie(resp) != nil {
				t.Error("no session cookie should be set on failed login")
			}
			resp.Body.Close()
		})
	}
}

func TestLoginStorageFailure(t *testing.T) {
	ts, userStore, _ := newTestServer(t)
	registerUser(t, ts, "alice", "secret")

	userStore.mu.Lock()
	userStore.lookupErr = errors.New("connection refused")
	userStore.mu.Unlock()

	// A storage outage is not a credentials problem.
	resp := postJSON(t, ts.URL+"/login", `{"username":"alice","password":"secret"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if sessionCookie(resp) != nil {
		t.Error("no session cookie should be set on a failed lookup")
	}
	resp.Body.Close()
}

// ============================================================================
// Logout
// ============================================================================

func TestLogout(t *testing.T) {
	ts, _, sessionStore := newTestServer(t)
	registerUser(t, ts, "alice", "secret")

	resp := postJSON(t, ts.URL+"/login", `{"username":"alice","password":"secret"}`)
	cookie := sessionCookie(resp)
	resp.Body.Close()
	if cookie == nil {
		t.Fatal("no session cookie from login")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/logout", nil)
	req.AddCookie(cookie)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("logout request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	expired := sessionCookie(resp)
	resp.Body.Close()
	if expired == nil {
		t.Error("logout should set an expiring session cookie")
	} else if expired.MaxAge >= 0 {
		t.Error("logout cookie should have a negative max age")
	}

	if _, err := sessionStore.Get(context.Background(), cookie.Value); err == nil {
		t.Error("session row should be deleted on logout")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/logout")
	if err != nil {
		t.Fatalf("logout request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestExpiredSessionRejected(t *testing.T) {
	ts, userStore, sessionStore := newTestServer(t)
	registerUser(t, ts, "alice", "secret")

	user, err := userStore.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("fetching user: %v", err)
	}

	_, err = sessionStore.Create(context.Background(), sessionsrepo.CreateSession{
		Token:     "stale-token",
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/logout", nil)
	req.AddCookie(&http.Cookie{Name: mid.SessionCookieName, Value: "stale-token"})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expired session should be unauthorized, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
