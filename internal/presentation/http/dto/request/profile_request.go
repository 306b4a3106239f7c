package request

// UpdateProfileRequest represents the business profile form
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	Website         string `json:"website"`
	Description     string `json:"description"`
}
