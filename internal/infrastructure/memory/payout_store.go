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

type payoutStore struct {
	mu      sync.RWMutex
	payouts []entity.Payout
}

// NewPayoutStore creates an in-memory payout repository
func NewPayoutStore() repository.PayoutRepository {
	return &payoutStore{}
}

func (s *payoutStore) Create(ctx context.Context, payout *entity.Payout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payouts = append(s.payouts, *payout)
	return nil
}

func (s *payoutStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.payouts {
		if s.payouts[i].ID == id {
			p := s.payouts[i]
			return &p, nil
		}
	}
	return nil, apperror.NewNotFoundError("Payout")
}

func (s *payoutStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]entity.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Payout, 0, len(s.payouts))
	for _, p := range s.payouts {
		if p.MerchantID == merchantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *payoutStore) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Payout], error) {
	s.mu.RLock()
	owned := make([]entity.Payout, 0, len(s.payouts))
	for _, p := range s.payouts {
		if p.MerchantID == merchantID {
			owned = append(owned, p)
		}
	}
	s.mu.RUnlock()

	return listquery.Apply(owned, q, func(p entity.Payout) []listquery.Field {
		fields := []listquery.Field{
			dateField("requested", p.RequestedAt),
			listquery.Num("amount", float64(p.Amount)/100),
			listquery.Text("status", p.Status.String()),
			listquery.Text("bank_account", p.BankAccount),
			listquery.Text("processed_by", p.ProcessedBy),
		}
		if p.ProcessedAt != nil {
			fields = append(fields, dateField("processed", *p.ProcessedAt))
		}
		return fields
	}), nil
}
