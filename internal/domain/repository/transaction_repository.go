package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// TransactionRepository defines the interface for payment transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Transaction], error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.Transaction, error)
	ListRecent(ctx context.Context, merchantID uuid.UUID, limit int) ([]entity.Transaction, error)
}
