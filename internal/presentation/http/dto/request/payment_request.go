package request

// InitiatePaymentRequest represents the pay-with form. Amount is in AED;
// zero means pay the full remaining balance. TipPercent and TipAmount are
// mutually exclusive.
type InitiatePaymentRequest struct {
	AssetID    string  `json:"asset_id"`
	Amount     float64 `json:"amount"`
	TipPercent int     `json:"tip_percent"`
	TipAmount  float64 `json:"tip_amount"`
}
