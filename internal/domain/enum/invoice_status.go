package enum

import "encoding/json"

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus int

const (
	InvoiceStatusPending InvoiceStatus = iota
	InvoiceStatusPaid
	InvoiceStatusExpired
	InvoiceStatusCancelled
)

func (s InvoiceStatus) String() string {
	switch s {
	case InvoiceStatusPaid:
		return "Paid"
	case InvoiceStatusExpired:
		return "Expired"
	case InvoiceStatusCancelled:
		return "Cancelled"
	default:
		return "Pending"
	}
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Paid":
		*s = InvoiceStatusPaid
	case "Expired":
		*s = InvoiceStatusExpired
	case "Cancelled":
		*s = InvoiceStatusCancelled
	default:
		*s = InvoiceStatusPending
	}
	return nil
}

// Payable reports whether the invoice can still accept payments.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceStatusPending
}
