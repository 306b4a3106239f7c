package entity

import "encoding/json"

// CryptoAsset is one entry of the static payment-asset catalog
type CryptoAsset struct {
	ID            string `json:"id"`   // e.g. "usdt-trc20"
	Name          string `json:"name"` // e.g. "USDT (TRC-20)"
	Code          string `json:"code"` // e.g. "USDTTRC20"
	Network       string `json:"network"`
	EstTime       string `json:"est_time"` // e.g. "~5 min"
	MinAmount     int64  `json:"-"`        // fils
	Confirmations int    `json:"confirmations"`
}

// MarshalJSON converts the fils minimum to a decimal for API responses
func (a CryptoAsset) MarshalJSON() ([]byte, error) {
	type Alias CryptoAsset
	return json.Marshal(&struct {
		Alias
		MinAmount float64 `json:"min_amount"`
	}{
		Alias:     Alias(a),
		MinAmount: float64(a.MinAmount) / 100,
	})
}

// Label returns the short form stored on transactions, e.g. "USDT:TRON"
func (a *CryptoAsset) Label() string {
	sym := a.Code
	if len(sym) > 4 {
		sym = sym[:4]
	}
	return sym + ":" + a.Network
}
