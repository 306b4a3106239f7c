package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/enum"
)

// Invoice represents a merchant invoice with its priced breakdown.
// All monetary fields are stored in fils and rendered as decimals in JSON.
type Invoice struct {
	ID            uuid.UUID          `json:"id"`
	MerchantID    uuid.UUID          `json:"merchant_id"`
	Number        string             `json:"number"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	Lines         []InvoiceLine      `json:"lines,omitempty"`
	Status        enum.InvoiceStatus `json:"status"`

	MunicipalityTax bool `json:"municipality_tax"`
	CustomerPaysFee bool `json:"customer_pays_fee"`

	SubTotal        int64 `json:"-"`
	VAT             int64 `json:"-"`
	MunicipalityFee int64 `json:"-"`
	ServiceFee      int64 `json:"-"`
	Total           int64 `json:"-"`
	Paid            int64 `json:"-"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts fils amounts to decimals for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal        float64 `json:"sub_total"`
		VAT             float64 `json:"vat"`
		MunicipalityFee float64 `json:"municipality_fee"`
		ServiceFee      float64 `json:"service_fee"`
		Total           float64 `json:"total"`
		Paid            float64 `json:"paid"`
		Remaining       float64 `json:"remaining"`
	}{
		Alias:           Alias(i),
		SubTotal:        float64(i.SubTotal) / 100,
		VAT:             float64(i.VAT) / 100,
		MunicipalityFee: float64(i.MunicipalityFee) / 100,
		ServiceFee:      float64(i.ServiceFee) / 100,
		Total:           float64(i.Total) / 100,
		Paid:            float64(i.Paid) / 100,
		Remaining:       float64(i.Remaining()) / 100,
	})
}

// Remaining returns the unpaid balance in fils
func (i *Invoice) Remaining() int64 {
	r := i.Total - i.Paid
	if r < 0 {
		return 0
	}
	return r
}

// ExpiredAt reports whether the invoice has passed its expiry at the given time
func (i *Invoice) ExpiredAt(now time.Time) bool {
	return i.Status == enum.InvoiceStatusPending && now.After(i.ExpiresAt)
}

// InvoiceLine is one item row of an invoice
type InvoiceLine struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"-"`
	Quantity  int       `json:"quantity"`
	Total     int64     `json:"-"`
}

// MarshalJSON converts fils amounts to decimals for API responses
func (l InvoiceLine) MarshalJSON() ([]byte, error) {
	type Alias InvoiceLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Total:     float64(l.Total) / 100,
	})
}
