package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
)

// BankAccountRepository defines the interface for bank account data operations
type BankAccountRepository interface {
	Create(ctx context.Context, account *entity.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.BankAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
