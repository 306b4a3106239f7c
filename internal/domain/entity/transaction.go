package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/enum"
)

// Transaction represents one crypto payment against an invoice
type Transaction struct {
	ID         uuid.UUID              `json:"id"`
	MerchantID uuid.UUID              `json:"merchant_id"`
	Reference  string                 `json:"reference"`
	InvoiceNo  string                 `json:"invoice_no"`
	AssetID    string                 `json:"asset_id"`
	Asset      string                 `json:"asset"` // display label, e.g. "USDT:BSC"
	Status     enum.TransactionStatus `json:"status"`

	Amount     int64 `json:"-"` // base amount in fils
	ServiceFee int64 `json:"-"`
	Tip        int64 `json:"-"`

	DepositAddress string    `json:"deposit_address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarshalJSON converts fils amounts to decimals for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		Amount     float64 `json:"amount"`
		ServiceFee float64 `json:"service_fee"`
		Tip        float64 `json:"tip"`
		Charged    float64 `json:"charged"`
	}{
		Alias:      Alias(t),
		Amount:     float64(t.Amount) / 100,
		ServiceFee: float64(t.ServiceFee) / 100,
		Tip:        float64(t.Tip) / 100,
		Charged:    float64(t.Charged()) / 100,
	})
}

// Charged returns the full amount the payer sends: base + fee + tip, in fils
func (t *Transaction) Charged() int64 {
	return t.Amount + t.ServiceFee + t.Tip
}
