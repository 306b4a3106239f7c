package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/enum"
)

// Payout represents a merchant's request to withdraw settled funds
type Payout struct {
	ID          uuid.UUID         `json:"id"`
	MerchantID  uuid.UUID         `json:"merchant_id"`
	Amount      int64             `json:"-"` // fils
	Status      enum.PayoutStatus `json:"status"`
	BankAccount string            `json:"bank_account"` // display label, e.g. "Emirates NBD ****1111"
	Notes       string            `json:"notes,omitempty"`
	ProcessedBy string            `json:"processed_by,omitempty"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
	RequestedAt time.Time         `json:"requested_at"`
}

// MarshalJSON converts the fils amount to a decimal for API responses
func (p Payout) MarshalJSON() ([]byte, error) {
	type Alias Payout
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}
