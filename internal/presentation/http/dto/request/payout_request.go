package request

// RequestPayoutRequest represents the payout request form. Amount is in AED.
type RequestPayoutRequest struct {
	Amount        float64 `json:"amount"`
	BankAccountID string  `json:"bank_account_id"`
	Notes         string  `json:"notes"`
}

// AddBankAccountRequest represents the add bank account form
type AddBankAccountRequest struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban"`
	SwiftCode     string `json:"swift_code"`
}
