package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/request"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
	"github.com/simplebit/merchant-api/pkg/listquery"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func toLineInputs(lines []request.InvoiceLineRequest) ([]service.CreateInvoiceLineInput, error) {
	out := make([]service.CreateInvoiceLineInput, 0, len(lines))
	for _, l := range lines {
		id, err := utils.ParseUUID(l.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, service.CreateInvoiceLineInput{ItemID: id, Quantity: l.Quantity})
	}
	return out, nil
}

// Create prices and stores a new invoice
// @Summary Create invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice draft"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toLineInputs(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), userID, &service.CreateInvoiceInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Lines:           lines,
		MunicipalityTax: req.MunicipalityTax,
		CustomerPaysFee: req.CustomerPaysFee,
		ExpiryHours:     req.ExpiryHours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", invoice)
}

// Preview reprices a draft without storing it
// @Summary Preview invoice totals
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PreviewInvoiceRequest true "Invoice draft"
// @Success 200 {object} response.APIResponse
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.PreviewInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := toLineInputs(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	breakdown, err := h.invoiceService.Preview(c.Request.Context(), userID, &service.PreviewInput{
		Lines:           lines,
		MunicipalityTax: req.MunicipalityTax,
		CustomerPaysFee: req.CustomerPaysFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice preview", gin.H{
		"sub_total":         float64(breakdown.Subtotal) / 100,
		"vat":               float64(breakdown.VAT) / 100,
		"municipality_fee":  float64(breakdown.MunicipalityFee) / 100,
		"service_fee":       float64(breakdown.ServiceFee) / 100,
		"customer_pays_fee": breakdown.CustomerPaysFee,
		"total":             float64(breakdown.Total) / 100,
	})
}

// List returns one page of the merchant's invoices
// @Summary List invoices
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param search query string false "Free text filter"
// @Param sort_by query string false "Sort column"
// @Param desc query bool false "Sort descending"
// @Param page query int false "Page number"
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
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

	result, err := h.invoiceService.List(c.Request.Context(), userID, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithList(c, "Invoices retrieved", result)
}

// Get returns one invoice by ID
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// Cancel marks a pending invoice as cancelled
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice cancelled", invoice)
}

// MarkPaid settles a pending invoice in full
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice marked as paid", invoice)
}
