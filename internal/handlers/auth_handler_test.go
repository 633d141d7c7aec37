package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dsatrack/internal/handlers"
	"dsatrack/internal/models"
	"dsatrack/internal/repositories"
)

type fakeUserRepo struct {
	createFn     func(context.Context, *models.User) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	u.ID = "user-1"
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, repositories.ErrNotFound
}

const testSecret = "test-secret"

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func authRouter(repo handlers.UserRepo) *chi.Mux {
	h := handlers.NewAuthHandler(repo, testSecret)
	r := chi.NewRouter()
	r.Post("/api/v1/auth/signup", h.SignupHandler)
	r.Post("/api/v1/auth/login", h.LoginHandler)
	return r
}

func TestSignup_Valid(t *testing.T) {
	var stored *models.User
	repo := &fakeUserRepo{
		createFn: func(_ context.Context, u *models.User) (*models.User, error) {
			u.ID = "user-1"
			stored = u
			return u, nil
		},
	}

	rr := postJSON(t, authRouter(repo), "/api/v1/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "s3cret-pass!",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if stored == nil || stored.PasswordHash == "" || stored.PasswordHash == "s3cret-pass!" {
		t.Fatalf("password was not hashed: %+v", stored)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("s3cret-pass!")) {
		t.Fatalf("response leaks the password: %s", rr.Body.String())
	}
}

func TestSignup_MissingFields(t *testing.T) {
	rr := postJSON(t, authRouter(&fakeUserRepo{}), "/api/v1/auth/signup", map[string]string{
		"email": "ada@example.com",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSignup_WeakPassword(t *testing.T) {
	rr := postJSON(t, authRouter(&fakeUserRepo{}), "/api/v1/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "short",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		createFn: func(context.Context, *models.User) (*models.User, error) {
			return nil, repositories.ErrDuplicateEmail
		},
	}
	rr := postJSON(t, authRouter(repo), "/api/v1/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "s3cret-pass!",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestLogin_Valid(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", Name: "Ada", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	rr := postJSON(t, authRouter(repo), "/api/v1/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "s3cret-pass!",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var got struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v\nbody=%s", err, rr.Body.String())
	}
	if got.Token == "" {
		t.Fatal("expected a token")
	}

	// token must verify against the same secret and carry the user id
	token, err := jwt.Parse(got.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "user-1" {
		t.Fatalf("wrong sub claim: %v", claims["sub"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-pass!"), bcrypt.DefaultCost)
	repo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	rr := postJSON(t, authRouter(repo), "/api/v1/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-pass!",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	rr := postJSON(t, authRouter(&fakeUserRepo{}), "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever!",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
