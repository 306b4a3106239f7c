package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/utils"
	"github.com/simplebit/merchant-api/pkg/validate"
)

// BankAccountService handles the merchant's payout destinations
type BankAccountService struct {
	accountRepo repository.BankAccountRepository
}

// NewBankAccountService creates a new bank account service
func NewBankAccountService(accountRepo repository.BankAccountRepository) *BankAccountService {
	return &BankAccountService{accountRepo: accountRepo}
}

// AddBankAccountInput represents the add-account form
type AddBankAccountInput struct {
	BankName      string
	AccountHolder string
	AccountNumber string
	IBAN          string
	SwiftCode     string
}

// Add stores a new bank account with its number masked
func (s *BankAccountService) Add(ctx context.Context, merchantID uuid.UUID, input *AddBankAccountInput) (*entity.BankAccount, error) {
	var form validate.Form
	form.Required("bankName", input.BankName, "Bank name is required")
	form.Required("accountHolder", input.AccountHolder, "Account holder is required")
	form.Required("accountNumber", input.AccountNumber, "Account number is required")
	form.Required("iban", input.IBAN, "IBAN is required")
	if err := form.Err(); err != nil {
		return nil, err
	}

	account := &entity.BankAccount{
		ID:            utils.NewUUID(),
		MerchantID:    merchantID,
		BankName:      input.BankName,
		AccountHolder: input.AccountHolder,
		AccountNumber: utils.MaskAccountNumber(input.AccountNumber),
		IBAN:          input.IBAN,
		SwiftCode:     input.SwiftCode,
		Status:        "active",
		CreatedAt:     time.Now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// List returns the merchant's bank accounts
func (s *BankAccountService) List(ctx context.Context, merchantID uuid.UUID) ([]entity.BankAccount, error) {
	return s.accountRepo.ListByMerchant(ctx, merchantID)
}

// Remove deletes a bank account owned by the merchant
func (s *BankAccountService) Remove(ctx context.Context, merchantID, id uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.MerchantID != merchantID {
		return apperror.NewNotFoundError("Bank account")
	}
	return s.accountRepo.Delete(ctx, id)
}
