package request

// ItemRequest represents the item create/edit form. Price is in AED.
type ItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
