package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
)

type bankAccountStore struct {
	mu       sync.RWMutex
	accounts []entity.BankAccount
}

// NewBankAccountStore creates an in-memory bank account repository
func NewBankAccountStore() repository.BankAccountRepository {
	return &bankAccountStore{}
}

func (s *bankAccountStore) Create(ctx context.Context, account *entity.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *bankAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, apperror.NewNotFoundError("Bank account")
}

func (s *bankAccountStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.BankAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.MerchantID == merchantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *bankAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Bank account")
}
