package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/enum"
)

// User represents a merchant account
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	Password  string    `json:"-"`

	// Business profile shown on invoices and the payment page
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessPhone   string `json:"business_phone,omitempty"`
	Website         string `json:"website,omitempty"`
	Description     string `json:"description,omitempty"`

	KYCStatus enum.KYCStatus `json:"kyc_status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// FullName returns the merchant's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
