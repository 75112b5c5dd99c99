package auth_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/auth"
	authsvc "newsboard/internal/service/auth"
	usrUC "newsboard/internal/usecase/user"
)

type oneUserRepo struct {
	user *entity.User
}

func (r *oneUserRepo) List(_ context.Context) ([]*entity.User, error) {
	return []*entity.User{r.user}, nil
}

func (r *oneUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r *oneUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, nil
}

func (r *oneUserRepo) Insert(_ context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}

func loginHandler(t *testing.T) auth.LoginHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Mitch4life"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &oneUserRepo{user: &entity.User{
		Email:    "butter@bridge.dev",
		Username: "butter_bridge",
		Password: string(hash),
	}}
	return auth.LoginHandler{
		Users:  &usrUC.Service{Repo: repo},
		Tokens: authsvc.NewTokenService([]byte(testSecret)),
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestLogin(t *testing.T) {
	h := loginHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"butter@bridge.dev","password":"Mitch4life"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.AccessToken == "" || body.RefreshToken == "" {
		t.Fatalf("missing tokens in %s", rec.Body.String())
	}

	claims, err := authsvc.NewTokenService([]byte(testSecret)).Verify(body.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "butter_bridge" {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := loginHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"butter@bridge.dev","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d, want 401", rec.Code)
	}
	if got := messageOf(t, rec); got != "Password is incorrect" {
		t.Fatalf("message=%q", got)
	}
}

func TestLogin_UnknownAccount(t *testing.T) {
	h := loginHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ghost@nowhere.dev","password":"Mitch4life"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d, want 404", rec.Code)
	}
	if got := messageOf(t, rec); got != "User Not Found" {
		t.Fatalf("message=%q", got)
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	h := loginHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400", rec.Code)
	}
}
