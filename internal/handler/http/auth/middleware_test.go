package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/memory"
	"articles-api/internal/infra/password"
	authservice "articles-api/internal/service/auth"
)

var testPublic = []string{"/auth/token", "/registration", "/health", "/ready", "/live", "/metrics", "/swagger/"}

type fixture struct {
	store   *memory.Store
	tokens  *Tokens
	svc     *authservice.AuthService
	hasher  password.Hasher
	handler http.Handler
	seen    *entity.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  memory.NewStore(),
		tokens: NewTokens(testJWTConfig()),
		hasher: password.NewBcryptHasher(4),
	}
	f.svc = authservice.NewAuthService(&authservice.UserStoreProvider{Users: f.store.Users(), Hasher: f.hasher}, testPublic)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := PrincipalFrom(r.Context()); ok {
			f.seen = &p
		}
		w.WriteHeader(http.StatusOK)
	})
	f.handler = Authn(f.tokens, f.store.Users(), f.svc)(next)
	return f
}

func (f *fixture) addUser(t *testing.T, username string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := f.hasher.Hash("password-" + username)
	require.NoError(t, err)
	u, err := f.store.Users().Save(context.Background(), entity.User{
		Username: username, Email: username + "@example.com", PasswordHash: hash, Role: role,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) bearer(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := f.tokens.Issue(u)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthn_PublicEndpoints(t *testing.T) {
	f := newFixture(t)
	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/swagger/", "/swagger/index.html", "/auth/token", "/registration"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAuthn_ProtectedEndpoints(t *testing.T) {
	f := newFixture(t)
	alice := f.addUser(t, "alice", entity.RoleUser)
	ghost := &entity.User{ID: 99, Username: "ghost", Role: entity.RoleAdmin}

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
	}{
		{"no token", "/articles", "", http.StatusUnauthorized},
		{"malformed header", "/articles", "Token abc", http.StatusUnauthorized},
		{"invalid token", "/users", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"token for deleted user", "/reviews/1", f.bearer(t, ghost), http.StatusUnauthorized},
		{"valid token", "/articles/1", f.bearer(t, alice), http.StatusOK},
		{"health prefix is not a subtree", "/healthz", f.bearer(t, ghost), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuthn_PrincipalFromStoredUser(t *testing.T) {
	f := newFixture(t)
	alice := f.addUser(t, "alice", entity.RoleUser)

	// a stale token still claiming ADMIN must not elevate
	stale := *alice
	stale.Role = entity.RoleAdmin
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Authorization", f.bearer(t, &stale))
	f.handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, f.seen)
	assert.Equal(t, entity.Principal{UserID: alice.ID, Username: "alice", Role: entity.RoleUser}, *f.seen)
}

func TestAuthn_DeletedUserLosesAccess(t *testing.T) {
	f := newFixture(t)
	bob := f.addUser(t, "bobby", entity.RoleUser)
	header := f.bearer(t, bob)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, f.store.Users().DeleteByID(context.Background(), bob.ID))

	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	h := RequireRole(entity.RoleAdmin, "user", next)

	tests := []struct {
		name     string
		ctx      context.Context
		wantCode int
	}{
		{"admin", WithPrincipal(context.Background(), entity.Principal{UserID: 1, Username: "admin", Role: entity.RoleAdmin}), http.StatusCreated},
		{"user", WithPrincipal(context.Background(), entity.Principal{UserID: 2, Username: "alice", Role: entity.RoleUser}), http.StatusForbidden},
		{"anonymous", context.Background(), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil).WithContext(tt.ctx))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"access denied"}`, rec.Body.String())
			}
		})
	}
}
