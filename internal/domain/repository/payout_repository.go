package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// PayoutRepository defines the interface for payout request data operations
type PayoutRepository interface {
	Create(ctx context.Context, payout *entity.Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error)
	List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Payout], error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.Payout, error)
}
