package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/billing"
	"github.com/simplebit/merchant-api/pkg/listquery"
	"github.com/simplebit/merchant-api/pkg/utils"
	"github.com/simplebit/merchant-api/pkg/validate"
)

// MinPayoutFils is the minimum payout request, 100.00 AED.
const MinPayoutFils int64 = 10000

// PayoutService handles payout request operations
type PayoutService struct {
	payoutRepo  repository.PayoutRepository
	accountRepo repository.BankAccountRepository
}

// NewPayoutService creates a new payout service
func NewPayoutService(payoutRepo repository.PayoutRepository, accountRepo repository.BankAccountRepository) *PayoutService {
	return &PayoutService{
		payoutRepo:  payoutRepo,
		accountRepo: accountRepo,
	}
}

// RequestPayoutInput represents the payout request form. Amount is in AED.
type RequestPayoutInput struct {
	Amount        float64
	BankAccountID uuid.UUID
	Notes         string
}

// Request creates a pending payout against one of the merchant's bank accounts
func (s *PayoutService) Request(ctx context.Context, merchantID uuid.UUID, input *RequestPayoutInput) (*entity.Payout, error) {
	var form validate.Form
	form.Min("amount", input.Amount, billing.ToAED(MinPayoutFils), "Minimum payout amount is 100 AED")
	if input.BankAccountID == uuid.Nil {
		form.Add("bankAccount", "Bank account is required")
	}
	if err := form.Err(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, input.BankAccountID)
	if err != nil {
		return nil, err
	}
	if account.MerchantID != merchantID {
		return nil, apperror.NewNotFoundError("Bank account")
	}

	payout := &entity.Payout{
		ID:          utils.NewUUID(),
		MerchantID:  merchantID,
		Amount:      billing.FromAED(input.Amount),
		Status:      enum.PayoutStatusPending,
		BankAccount: account.Label(),
		Notes:       input.Notes,
		RequestedAt: time.Now(),
	}
	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

// List returns one page of the merchant's payout history
func (s *PayoutService) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Payout], error) {
	return s.payoutRepo.List(ctx, merchantID, q)
}
