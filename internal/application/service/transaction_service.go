package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// TransactionService exposes the merchant's payment history
type TransactionService struct {
	txRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{txRepo: txRepo}
}

// List returns one page of the merchant's transactions
func (s *TransactionService) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Transaction], error) {
	return s.txRepo.List(ctx, merchantID, q)
}
