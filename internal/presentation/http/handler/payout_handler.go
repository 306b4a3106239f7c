package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/request"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
	"github.com/simplebit/merchant-api/pkg/listquery"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// PayoutHandler handles payout HTTP requests
type PayoutHandler struct {
	payoutService *service.PayoutService
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutService *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

// Request creates a payout request
func (h *PayoutHandler) Request(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// A missing or malformed account ID falls through as uuid.Nil and is
	// reported by the form rules together with any other violations.
	accountID, _ := utils.ParseUUID(req.BankAccountID)

	payout, err := h.payoutService.Request(c.Request.Context(), userID, &service.RequestPayoutInput{
		Amount:        req.Amount,
		BankAccountID: accountID,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payout requested", payout)
}

// List returns one page of the merchant's payout history
func (h *PayoutHandler) List(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var q listquery.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.payoutService.List(c.Request.Context(), userID, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithList(c, "Payouts retrieved", result)
}
