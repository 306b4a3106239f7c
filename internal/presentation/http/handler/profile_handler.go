package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/request"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// ProfileHandler handles profile and bank account HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
	accountService *service.BankAccountService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService, accountService *service.BankAccountService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		accountService: accountService,
	}
}

// Get returns the authenticated merchant's profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", user)
}

// Update saves the business profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), userID, &service.UpdateProfileInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		BusinessPhone:   req.BusinessPhone,
		Website:         req.Website,
		Description:     req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated", user)
}

// KYC returns the merchant's verification state
func (h *ProfileHandler) KYC(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	status, err := h.profileService.KYC(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "KYC status retrieved", gin.H{"kyc_status": status})
}

// AddBankAccount stores a new payout destination
func (h *ProfileHandler) AddBankAccount(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.AddBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.Add(c.Request.Context(), userID, &service.AddBankAccountInput{
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		IBAN:          req.IBAN,
		SwiftCode:     req.SwiftCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bank account added", account)
}

// ListBankAccounts returns the merchant's payout destinations
func (h *ProfileHandler) ListBankAccounts(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	accounts, err := h.accountService.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank accounts retrieved", accounts)
}

// RemoveBankAccount deletes a payout destination
func (h *ProfileHandler) RemoveBankAccount(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.Remove(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
