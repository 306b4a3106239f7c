package validate

import (
	"testing"

	"github.com/simplebit/merchant-api/pkg/apperror"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"foo@bar.com", true},
		{"a@b.co", true},
		{"user.name@sub.domain.org", true},
		{"foo@bar", false},
		{"foo bar@baz.com", false},
		{"@bar.com", false},
		{"foo@", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmail(tt.in); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"https://", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPasswordRules(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		violations int
	}{
		{"meets all rules", "Abc12345!", 0},
		{"fails every rule", "abc", 4}, // short, no upper, no digit, no symbol
		{"missing symbol", "Abc12345", 1},
		{"missing upper", "abc12345!", 1},
		{"missing lower", "ABC12345!", 1},
		{"missing digit", "Abcdefgh!", 1},
		{"too short", "Ab1!", 1},
		{"empty", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Form
			f.Password("password", tt.password)
			if got := len(f.Errors()); got != tt.violations {
				t.Errorf("Password(%q) violations = %d, want %d: %v", tt.password, got, tt.violations, f.Errors())
			}
		})
	}
}

func TestFormCollectsAllViolations(t *testing.T) {
	// An empty signup reports one error per required field, not just the
	// first one hit.
	var f Form
	f.Required("firstName", "", "First name is required")
	f.Required("lastName", "", "Last name is required")
	f.Required("email", "", "Email is required")
	f.Email("email", "")
	f.Required("phone", "", "Phone number is required")

	if f.Valid() {
		t.Fatal("expected invalid form")
	}
	if got := len(f.Errors()); got != 4 {
		t.Errorf("violations = %d, want 4: %v", got, f.Errors())
	}

	fields := map[string]bool{}
	for _, e := range f.Errors() {
		fields[e.Field] = true
	}
	for _, want := range []string{"firstName", "lastName", "email", "phone"} {
		if !fields[want] {
			t.Errorf("missing violation for %q", want)
		}
	}
}

func TestFormErr(t *testing.T) {
	var ok Form
	ok.Required("name", "present", "Name is required")
	if err := ok.Err(); err != nil {
		t.Errorf("valid form Err() = %v, want nil", err)
	}

	var bad Form
	bad.Required("name", "", "Name is required")
	err := bad.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if len(appErr.Errors) != 1 || appErr.Errors[0].Field != "name" {
		t.Errorf("field errors = %v", appErr.Errors)
	}
}

func TestFormMatch(t *testing.T) {
	var f Form
	f.Match("confirmPassword", "Abc12345!", "Abc12345?", "Passwords do not match")
	if f.Valid() {
		t.Error("expected mismatch violation")
	}

	var same Form
	same.Match("confirmPassword", "Abc12345!", "Abc12345!", "Passwords do not match")
	if !same.Valid() {
		t.Errorf("unexpected violations: %v", same.Errors())
	}
}

func TestFormWhitespaceRequired(t *testing.T) {
	var f Form
	f.Required("name", "   ", "Name is required")
	if f.Valid() {
		t.Error("whitespace-only value passed Required")
	}
}
