package request

// InvoiceLineRequest is one selected catalog row
type InvoiceLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateInvoiceRequest represents the invoice creation form
type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	Lines           []InvoiceLineRequest `json:"lines"`
	MunicipalityTax bool                 `json:"municipality_tax"`
	CustomerPaysFee bool                 `json:"customer_pays_fee"`
	ExpiryHours     int                  `json:"expiry_hours"`
}

// PreviewInvoiceRequest reprices a draft without storing it
type PreviewInvoiceRequest struct {
	Lines           []InvoiceLineRequest `json:"lines"`
	MunicipalityTax bool                 `json:"municipality_tax"`
	CustomerPaysFee bool                 `json:"customer_pays_fee"`
}
