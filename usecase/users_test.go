package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"instituteapi/model"
	"instituteapi/repository"
	"instituteapi/services"
	"instituteapi/testutils"

	"github.com/pquerna/otp/totp"
)

func newUserService() *UserService {
	return &UserService{
		Users:      repository.NewUsersRepo(testutils.NewMemStore[model.User]("email")),
		Tokens:     services.NewTokenService("secret", "institute-api", time.Hour),
		Revoker:    services.NewMemoryTokenBlacklist(),
		TOTPIssuer: "Institute",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	user, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: " Asha@Example.COM ", Password: "pass1!x", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "asha@example.com" || user.Role != model.RoleUser {
		t.Fatalf("expected normalised email and user role, got %+v", user)
	}
	if user.Password == "pass1!x" {
		t.Fatal("password stored in plaintext")
	}

	if _, err := svc.Register(ctx, RegisterInput{Name: "Dup", Email: "asha@example.com", Password: "pass1!x"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	res, err := svc.Login(ctx, LoginInput{Email: "ASHA@example.com", Password: "pass1!x", UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := svc.Tokens.Parse(res.Token)
	if err != nil || claims.UserID != user.ID.Hex() || claims.Role != model.RoleUser {
		t.Fatalf("bad token: %v %+v", err, claims)
	}

	me, _ := svc.Me(ctx, user.ID.Hex())
	if me.LastLoginAt == nil {
		t.Fatal("login time not recorded")
	}

	for _, in := range []LoginInput{
		{Email: "asha@example.com", Password: "wrong1!x"},
		{Email: "nobody@example.com", Password: "pass1!x"},
	} {
		if _, err := svc.Login(ctx, in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %+v, got %v", in, err)
		}
	}
}

func TestRegisterRoleSignup(t *testing.T) {
	svc := newUserService()
	svc.AllowRoleSignup = true

	user, err := svc.Register(context.Background(), RegisterInput{Name: "Ed", Email: "ed@example.com", Password: "pass1!x", Role: model.RoleEditor})
	if err != nil || user.Role != model.RoleEditor {
		t.Fatalf("expected editor, got %v %+v", err, user)
	}

	_, err = svc.Register(context.Background(), RegisterInput{Name: "X", Email: "x@example.com", Password: "pass1!x", Role: "root"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}

func TestTwoFactorFlow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	svc := newUserService()
	svc.Now = fixedClock(now)

	user, _ := svc.Register(ctx, RegisterInput{Name: "Admin", Email: "a@example.com", Password: "pass1!x"})
	id := user.ID.Hex()

	if err := svc.EnableTwoFactor(ctx, id, "123456"); !errors.Is(err, ErrValidation) {
		t.Fatalf("enable before setup should fail validation, got %v", err)
	}

	setup, err := svc.SetupTwoFactor(ctx, id)
	if err != nil || setup.Secret == "" || setup.URL == "" {
		t.Fatalf("setup failed: %v %+v", err, setup)
	}

	if err := svc.EnableTwoFactor(ctx, id, "000000"); !errors.Is(err, ErrInvalidTwoFactor) {
		t.Fatalf("expected invalid code, got %v", err)
	}

	code, _ := totp.GenerateCode(setup.Secret, now)
	if err := svc.EnableTwoFactor(ctx, id, code); err != nil {
		t.Fatalf("enable failed: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "pass1!x"}); !errors.Is(err, ErrTwoFactorRequired) {
		t.Fatalf("expected 2fa required, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "pass1!x", TOTPCode: "999999"}); !errors.Is(err, ErrInvalidTwoFactor) && code != "999999" {
		t.Fatalf("expected invalid 2fa, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "pass1!x", TOTPCode: code}); err != nil {
		t.Fatalf("login with code failed: %v", err)
	}

	if err := svc.DisableTwoFactor(ctx, id, code); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "pass1!x"}); err != nil {
		t.Fatalf("login after disable failed: %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	svc.Register(ctx, RegisterInput{Name: "U", Email: "u@example.com", Password: "pass1!x"})
	res, _ := svc.Login(ctx, LoginInput{Email: "u@example.com", Password: "pass1!x"})

	if err := svc.Logout(ctx, res.Token, res.ExpiresAt); err != nil {
		t.Fatal(err)
	}
	revoked, _ := svc.Revoker.IsRevoked(ctx, res.Token)
	if !revoked {
		t.Fatal("token should be revoked after logout")
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.EnsureAdmin(ctx, "", "root@example.com", "pass1!x")
	if err != nil || !created {
		t.Fatalf("expected admin to be created, got %v %v", created, err)
	}
	created, err = svc.EnsureAdmin(ctx, "", "root@example.com", "pass1!x")
	if err != nil || created {
		t.Fatalf("second call should be a no-op, got %v %v", created, err)
	}
	if created, _ := svc.EnsureAdmin(ctx, "", "", ""); created {
		t.Fatal("empty config must not seed")
	}

	admins, _ := svc.Users.CountAdmins(ctx)
	if admins != 1 {
		t.Fatalf("expected 1 admin, got %d", admins)
	}
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	for _, e := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		if _, err := svc.Register(ctx, RegisterInput{Name: e, Email: e, Password: "pass1!x"}); err != nil {
			t.Fatal(err)
		}
	}
	page, err := svc.List(ctx, Page{Limit: 2})
	if err != nil || page.Total != 3 || len(page.Items) != 2 {
		t.Fatalf("unexpected page %+v %v", page, err)
	}
}
