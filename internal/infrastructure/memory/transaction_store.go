package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

type transactionStore struct {
	mu  sync.RWMutex
	txs []entity.Transaction
}

// NewTransactionStore creates an in-memory transaction repository
func NewTransactionStore() repository.TransactionRepository {
	return &transactionStore{}
}

func (s *transactionStore) Create(ctx context.Context, tx *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, *tx)
	return nil
}

func (s *transactionStore) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.txs {
		if s.txs[i].Reference == reference {
			tx := s.txs[i]
			return &tx, nil
		}
	}
	return nil, apperror.NewNotFoundError("Transaction")
}

func (s *transactionStore) Update(ctx context.Context, tx *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txs {
		if s.txs[i].ID == tx.ID {
			s.txs[i] = *tx
			return nil
		}
	}
	return apperror.NewNotFoundError("Transaction")
}

func (s *transactionStore) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Transaction], error) {
	s.mu.RLock()
	owned := make([]entity.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if tx.MerchantID == merchantID {
			owned = append(owned, tx)
		}
	}
	s.mu.RUnlock()

	return listquery.Apply(owned, q, func(tx entity.Transaction) []listquery.Field {
		return []listquery.Field{
			listquery.Text("reference", tx.Reference),
			listquery.Text("invoice", tx.InvoiceNo),
			listquery.Num("amount", float64(tx.Charged())/100),
			listquery.Text("crypto", tx.Asset),
			listquery.Text("status", tx.Status.String()),
			dateField("date", tx.CreatedAt),
		}
	}), nil
}

func (s *transactionStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if tx.MerchantID == merchantID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *transactionStore) ListRecent(ctx context.Context, merchantID uuid.UUID, limit int) ([]entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first, insertion order is chronological.
	out := make([]entity.Transaction, 0, limit)
	for i := len(s.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if s.txs[i].MerchantID == merchantID {
			out = append(out, s.txs[i])
		}
	}
	return out, nil
}
