package enum

import "encoding/json"

// KYCStatus represents a merchant's identity-verification state.
// The dashboard only displays it; no verification workflow runs here.
type KYCStatus int

const (
	KYCStatusUnverified KYCStatus = iota
	KYCStatusPending
	KYCStatusVerified
	KYCStatusRejected
)

func (s KYCStatus) String() string {
	switch s {
	case KYCStatusPending:
		return "Pending"
	case KYCStatusVerified:
		return "Verified"
	case KYCStatusRejected:
		return "Rejected"
	default:
		return "Unverified"
	}
}

func (s KYCStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
