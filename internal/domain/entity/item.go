package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item represents a catalog entry selectable on the invoice creation screen
type Item struct {
	ID          uuid.UUID `json:"id"`
	MerchantID  uuid.UUID `json:"merchant_id"`
	Name        string    `json:"name"`
	Price       int64     `json:"-"` // fils
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON converts the fils price to a decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}
