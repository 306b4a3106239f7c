package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number, e.g. INV-2025-4F3A9C21
func GenerateInvoiceNo(now time.Time) string {
	return "INV-" + strconv.Itoa(now.Year()) + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GeneratePaymentRef generates a unique payment reference
func GeneratePaymentRef() string {
	return "payment_" + uuid.New().String()
}

// MaskAccountNumber keeps only the last four digits of an account number
func MaskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "****" + number[len(number)-4:]
}
