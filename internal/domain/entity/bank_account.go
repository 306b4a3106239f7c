package entity

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount represents a payout destination on the merchant profile
type BankAccount struct {
	ID            uuid.UUID `json:"id"`
	MerchantID    uuid.UUID `json:"merchant_id"`
	BankName      string    `json:"bank_name"`
	AccountHolder string    `json:"account_holder"`
	AccountNumber string    `json:"account_number"` // stored masked
	IBAN          string    `json:"-"`
	SwiftCode     string    `json:"-"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Label returns the short form shown on the payouts screen
func (b *BankAccount) Label() string {
	return b.BankName + " " + b.AccountNumber
}
