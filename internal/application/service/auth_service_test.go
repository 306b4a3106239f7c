package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/simplebit/merchant-api/internal/infrastructure/memory"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.Stores) {
	t.Helper()
	stores := memory.NewStores()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(stores.Users, jwtManager), stores
}

func registerInput() *RegisterInput {
	return &RegisterInput{
		FirstName:       "Parveen",
		LastName:        "Kumar",
		Email:           "parveen@example.com",
		Phone:           "+971501234567",
		Country:         "United Arab Emirates",
		Password:        "Abc12345!",
		ConfirmPassword: "Abc12345!",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Password == "Abc12345!" {
		t.Error("password stored in plaintext")
	}

	out, err := svc.Login(ctx, &LoginInput{Email: "parveen@example.com", Password: "Abc12345!"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("missing tokens")
	}
	if out.User.ID != user.ID {
		t.Error("wrong user returned")
	}
}

func TestRegisterEmptyFormReportsEveryField(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &RegisterInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 422 {
		t.Fatalf("error = %v, want 422", err)
	}

	fields := map[string]bool{}
	for _, e := range appErr.Errors {
		fields[e.Field] = true
	}
	for _, want := range []string{"firstName", "lastName", "email", "phone", "country", "password"} {
		if !fields[want] {
			t.Errorf("missing violation for %q", want)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := svc.Register(ctx, registerInput())
	if err == nil {
		t.Fatal("expected conflict")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "parveen@example.com", "Wrong1234!"},
		{"unknown email", "nobody@example.com", "Abc12345!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &LoginInput{Email: tt.email, Password: tt.pass})
			if err == nil {
				t.Fatal("expected error")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 401 {
				t.Errorf("error = %v, want 401", err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		CurrentPassword: "Abc12345!",
		NewPassword:     "Xyz98765!",
		ConfirmPassword: "Xyz98765!",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, err := svc.Login(ctx, &LoginInput{Email: "parveen@example.com", Password: "Xyz98765!"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginInput{Email: "parveen@example.com", Password: "Abc12345!"}); err == nil {
		t.Error("old password still accepted")
	}
}

func TestChangePasswordRules(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name  string
		input ChangePasswordInput
	}{
		{"same as current", ChangePasswordInput{
			CurrentPassword: "Abc12345!", NewPassword: "Abc12345!", ConfirmPassword: "Abc12345!",
		}},
		{"weak new password", ChangePasswordInput{
			CurrentPassword: "Abc12345!", NewPassword: "weak", ConfirmPassword: "weak",
		}},
		{"confirmation mismatch", ChangePasswordInput{
			CurrentPassword: "Abc12345!", NewPassword: "Xyz98765!", ConfirmPassword: "Xyz98765?",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.ChangePassword(ctx, user.ID, &tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	out, err := svc.Login(ctx, &LoginInput{Email: "parveen@example.com", Password: "Abc12345!"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("missing access token")
	}

	if _, err := svc.RefreshToken(ctx, "garbage"); err == nil {
		t.Error("expected rejection for garbage token")
	}
}
