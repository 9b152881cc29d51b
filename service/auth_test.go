package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"Immob/config"
	"Immob/dao"
	"Immob/dao/cache"
	"Immob/pkg/jwt"
	"Immob/pkg/response"
	"Immob/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type mailRecorder struct {
	mu   sync.Mutex
	sent []string
}

func (m *mailRecorder) Send(subject, body, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+": "+subject+"\n"+body)
	return nil
}

func (m *mailRecorder) SendAsync(subject, body, to string) {
	_ = m.Send(subject, body, to)
}

func (m *mailRecorder) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}

func newAuthService(t *testing.T) (*AuthService, *mailRecorder, context.Context) {
	t.Helper()
	db := newTestDB(t)
	rec := &mailRecorder{}
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	svc := &AuthService{
		Config: &config.Config{
			App: &config.App{Env: "test", FrontendURL: "http://localhost:3000"},
			Jwt: &config.Jwt{Secret: "test-secret", AccessExpire: 60, RefreshExpire: 1440},
		},
		UsersRepo:   dao.NewUsers(db),
		ResetRepo:   dao.NewPasswordResetTokens(db),
		Blacklist:   cache.NewTokenBlacklist(rds),
		MailService: rec,
	}
	return svc, rec, context.Background()
}

func registerReq() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "Str0ng&Secure!",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	user, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("registered user should get an id")
	}
	if user.Password == "Str0ng&Secure!" {
		t.Fatal("password stored in clear")
	}

	resp, err := svc.Login(ctx, "Alice@Example.com", "Str0ng&Secure!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("login should issue a token pair")
	}

	claims, err := jwt.ParseToken([]byte("test-secret"), jwt.TypeAccess, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token user = %d, want %d", claims.UserID, user.ID)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	req := registerReq()
	req.Password = "weakpass"
	_, err := svc.Register(ctx, req)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %v", err)
	}

	// Password derived from the user's own email is rejected too.
	req = registerReq()
	req.Password = "X1!alice9$kw"
	if _, err := svc.Register(ctx, req); err == nil {
		t.Fatal("password containing the username should be rejected")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	if _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, registerReq())
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	if _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, "alice@example.com", "Wrong&Pass123")
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %v", err)
	}

	// Unknown account answers exactly the same way.
	_, err = svc.Login(ctx, "nobody@example.com", "Wrong&Pass123")
	if !errors.As(err, &be) || be.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, rec, ctx := newAuthService(t)

	user, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email still reports success and sends nothing.
	if err := svc.PasswordReset(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("reset unknown email: %v", err)
	}
	if rec.last() != "" {
		t.Fatal("no mail expected for unknown email")
	}

	if err := svc.PasswordReset(ctx, user.Email); err != nil {
		t.Fatalf("reset: %v", err)
	}
	mail := rec.last()
	if mail == "" {
		t.Fatal("reset mail not sent")
	}

	idx := strings.Index(mail, "token=")
	if idx < 0 {
		t.Fatalf("reset mail carries no token: %s", mail)
	}
	token := strings.TrimSpace(strings.Fields(mail[idx+len("token="):])[0])

	if err := svc.PasswordResetConfirm(ctx, token, "N3w&Secure!pass"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if _, err := svc.Login(ctx, user.Email, "N3w&Secure!pass"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// The token is single use.
	err = svc.PasswordResetConfirm(ctx, token, "An0ther&Pass!x")
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 reusing the token, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	if _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}
	resp, err := svc.Login(ctx, "alice@example.com", "Str0ng&Secure!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(ctx, resp.AccessToken); err == nil {
		t.Fatal("access token accepted on the refresh endpoint")
	}
	if _, err := svc.Refresh(ctx, resp.RefreshToken); err != nil {
		t.Fatalf("refresh: %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, ctx := newAuthService(t)

	if _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}
	resp, err := svc.Login(ctx, "alice@example.com", "Str0ng&Secure!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, resp.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a revoked refresh token, got %v", err)
	}

	err = svc.Logout(ctx, "not-a-token")
	if !errors.As(err, &be) || be.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed token, got %v", err)
	}
}
