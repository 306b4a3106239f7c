package enum

import "encoding/json"

// PayoutStatus represents the processing state of a payout request
type PayoutStatus int

const (
	PayoutStatusPending PayoutStatus = iota
	PayoutStatusProcessing
	PayoutStatusCompleted
	PayoutStatusRejected
)

func (s PayoutStatus) String() string {
	switch s {
	case PayoutStatusProcessing:
		return "Processing"
	case PayoutStatusCompleted:
		return "Completed"
	case PayoutStatusRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

func (s PayoutStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PayoutStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PayoutStatus(i)
		return nil
	}
	switch str {
	case "Processing":
		*s = PayoutStatusProcessing
	case "Completed":
		*s = PayoutStatusCompleted
	case "Rejected":
		*s = PayoutStatusRejected
	default:
		*s = PayoutStatusPending
	}
	return nil
}
