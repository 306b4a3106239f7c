package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateInvoiceNo(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := GenerateInvoiceNo(now)

	if !strings.HasPrefix(got, "INV-2026-") {
		t.Errorf("invoice no = %q, want INV-2026- prefix", got)
	}
	if len(got) != len("INV-2026-")+8 {
		t.Errorf("invoice no length = %d", len(got))
	}
	if got == GenerateInvoiceNo(now) {
		t.Error("invoice numbers should be unique")
	}
}

func TestGeneratePaymentRef(t *testing.T) {
	got := GeneratePaymentRef()
	if !strings.HasPrefix(got, "payment_") {
		t.Errorf("reference = %q, want payment_ prefix", got)
	}
	if got == GeneratePaymentRef() {
		t.Error("references should be unique")
	}
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1050011111", "****1111"},
		{"12345", "****2345"},
		{"1234", "1234"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := MaskAccountNumber(tt.in); got != tt.want {
			t.Errorf("MaskAccountNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abc12345!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Abc12345!" {
		t.Error("hash equals plaintext")
	}
	if !CheckPasswordHash("Abc12345!", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("Abc12345?", hash) {
		t.Error("wrong password accepted")
	}
}
