package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/request"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
	"github.com/simplebit/merchant-api/pkg/billing"
)

// PaymentHandler handles the public payment flow
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPublicInvoice returns the payer-facing view of an invoice
// @Summary Public invoice view
// @Tags payments
// @Produce json
// @Param number path string true "Invoice number"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /pay/{number} [get]
func (h *PaymentHandler) GetPublicInvoice(c *gin.Context) {
	view, err := h.paymentService.GetPublicInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved", view)
}

// ListAssets returns the payment asset catalog
func (h *PaymentHandler) ListAssets(c *gin.Context) {
	assets, err := h.paymentService.ListAssets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Assets retrieved", assets)
}

// Initiate creates a pending payment against an invoice
// @Summary Initiate payment
// @Tags payments
// @Accept json
// @Produce json
// @Param number path string true "Invoice number"
// @Param request body request.InitiatePaymentRequest true "Payment selection"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /pay/{number} [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tx, err := h.paymentService.Initiate(c.Request.Context(), c.Param("number"), &service.InitiateInput{
		AssetID: req.AssetID,
		Amount:  billing.FromAED(req.Amount),
		Tip: billing.Tip{
			Percent: req.TipPercent,
			Custom:  billing.FromAED(req.TipAmount),
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment initiated", tx)
}

// Get returns a transaction by its payment reference
func (h *PaymentHandler) Get(c *gin.Context) {
	tx, err := h.paymentService.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved", tx)
}

// Confirm settles a pending payment
func (h *PaymentHandler) Confirm(c *gin.Context) {
	tx, err := h.paymentService.Confirm(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment confirmed", tx)
}
