package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"genmoney/internal/model"
	"genmoney/internal/token"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) CreateUser(ctx context.Context, u *model.User) error { return nil }

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) AppendEnrollment(ctx context.Context, userID, courseID string) (bool, error) {
	return false, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeader(t *testing.T) {
	tokens := token.NewService("secret", 30*time.Minute)
	mw := Auth(tokens, &stubUserRepo{users: map[string]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/user/dashboard", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthGarbageToken(t *testing.T) {
	tokens := token.NewService("secret", 30*time.Minute)
	mw := Auth(tokens, &stubUserRepo{users: map[string]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/user/dashboard", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthVanishedUser(t *testing.T) {
	tokens := token.NewService("secret", 30*time.Minute)
	mw := Auth(tokens, &stubUserRepo{users: map[string]*model.User{}})

	tok, err := tokens.Issue("gone")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/user/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for vanished user, got %d", rec.Code)
	}
}

func TestAuthResolvesUserIntoContext(t *testing.T) {
	tokens := token.NewService("secret", 30*time.Minute)
	repo := &stubUserRepo{users: map[string]*model.User{
		"u1": {ID: "u1", Email: "a@x.com"},
	}}
	mw := Auth(tokens, repo)

	var got *model.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	})

	tok, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/user/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	mw(inner).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.ID != "u1" {
		t.Fatalf("expected user u1 in context, got %+v", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name string
		user *model.User
		want int
	}{
		{"non-admin", &model.User{ID: "u1"}, http.StatusForbidden},
		{"admin", &model.User{ID: "u2", IsAdmin: true}, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/courses", nil)
		ctx := context.WithValue(req.Context(), UserContextKey, tc.user)
		rec := httptest.NewRecorder()
		RequireAdmin(okHandler()).ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}
