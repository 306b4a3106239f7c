// Package validate implements the submit-time form rule sets used by the
// dashboard screens. Rules are evaluated together and every violation is
// collected, so a rejected submission carries the complete field→message
// list rather than just the first failure.
package validate

import (
	"regexp"
	"strings"

	"github.com/simplebit/merchant-api/pkg/apperror"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe   = regexp.MustCompile(`^https?://.+`)
)

// IsEmail reports whether s matches the email pattern used across all forms.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsURL reports whether s looks like an http(s) URL.
func IsURL(s string) bool {
	return urlRe.MatchString(s)
}

// Form collects field errors for one submission.
type Form struct {
	errs []apperror.FieldError
}

// Add records a violation for a field.
func (f *Form) Add(field, message string) {
	f.errs = append(f.errs, apperror.FieldError{Field: field, Message: message})
}

// Required rejects empty or whitespace-only values.
func (f *Form) Required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		f.Add(field, message)
	}
}

// Email validates the email pattern. Empty values are skipped; pair with
// Required when the field is mandatory.
func (f *Form) Email(field, value string) {
	if value != "" && !IsEmail(value) {
		f.Add(field, "Invalid email format")
	}
}

// URL validates the http(s) URL pattern, skipping empty values.
func (f *Form) URL(field, value string) {
	if value != "" && !IsURL(value) {
		f.Add(field, "Invalid URL format")
	}
}

// Min rejects values below a bound.
func (f *Form) Min(field string, value, min float64, message string) {
	if value < min {
		f.Add(field, message)
	}
}

// Positive rejects zero or negative values.
func (f *Form) Positive(field string, value float64, message string) {
	if value <= 0 {
		f.Add(field, message)
	}
}

// Match rejects a confirmation value that differs from the original.
func (f *Form) Match(field, value, confirm, message string) {
	if value != confirm {
		f.Add(field, message)
	}
}

// Password applies the full complexity rule set, recording one violation
// per unmet rule.
func (f *Form) Password(field, value string) {
	if len(value) < 8 {
		f.Add(field, "Password must be at least 8 characters")
	}
	if !strings.ContainsAny(value, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		f.Add(field, "Password must contain uppercase letter")
	}
	if !strings.ContainsAny(value, "abcdefghijklmnopqrstuvwxyz") {
		f.Add(field, "Password must contain lowercase letter")
	}
	if !strings.ContainsAny(value, "0123456789") {
		f.Add(field, "Password must contain number")
	}
	if !strings.ContainsAny(value, "!@#$%^&*") {
		f.Add(field, "Password must contain special character (!@#$%^&*)")
	}
}

// Valid reports whether no rule was violated.
func (f *Form) Valid() bool {
	return len(f.errs) == 0
}

// Errors returns the collected violations in submission order.
func (f *Form) Errors() []apperror.FieldError {
	return f.errs
}

// Err returns nil when the form is valid, otherwise a 422 validation error
// carrying every violation.
func (f *Form) Err() error {
	if f.Valid() {
		return nil
	}
	return apperror.NewValidationError(f.errs)
}
