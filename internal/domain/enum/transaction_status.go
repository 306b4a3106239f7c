package enum

import "encoding/json"

// TransactionStatus represents the settlement state of a crypto payment
type TransactionStatus int

const (
	TransactionStatusPending TransactionStatus = iota
	TransactionStatusFinished
	TransactionStatusExpired
	TransactionStatusFailed
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusFinished:
		return "Finished"
	case TransactionStatusExpired:
		return "Expired"
	case TransactionStatusFailed:
		return "Failed"
	default:
		return "Pending"
	}
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	switch str {
	case "Finished":
		*s = TransactionStatusFinished
	case "Expired":
		*s = TransactionStatusExpired
	case "Failed":
		*s = TransactionStatusFailed
	default:
		*s = TransactionStatusPending
	}
	return nil
}
