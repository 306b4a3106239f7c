package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// TransactionHandler exposes the merchant's payment history
type TransactionHandler struct {
	txService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// List returns one page of the merchant's transactions
func (h *TransactionHandler) List(c *gin.Context) {
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

	result, err := h.txService.List(c.Request.Context(), userID, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithList(c, "Transactions retrieved", result)
}
