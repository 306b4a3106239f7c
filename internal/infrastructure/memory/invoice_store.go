package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// dateFormat is the rendering used for date columns on the table screens.
// Filtering matches against this form, so searching "Jan" finds January rows.
const dateFormat = "Jan 02, 2006"

// dateField renders a timestamp column: filtered as its display text,
// sorted chronologically.
func dateField(key string, t time.Time) listquery.Field {
	return listquery.Field{Key: key, Text: t.Format(dateFormat), Num: float64(t.Unix()), Numeric: true}
}

type invoiceStore struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
}

// NewInvoiceStore creates an in-memory invoice repository
func NewInvoiceStore() repository.InvoiceRepository {
	return &invoiceStore{}
}

func (s *invoiceStore) Create(ctx context.Context, invoice *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, *invoice)
	return nil
}

func (s *invoiceStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			inv := s.invoices[i]
			return &inv, nil
		}
	}
	return nil, apperror.NewNotFoundError("Invoice")
}

func (s *invoiceStore) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.invoices {
		if s.invoices[i].Number == number {
			inv := s.invoices[i]
			return &inv, nil
		}
	}
	return nil, apperror.NewNotFoundError("Invoice")
}

func (s *invoiceStore) Update(ctx context.Context, invoice *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == invoice.ID {
			s.invoices[i] = *invoice
			return nil
		}
	}
	return apperror.NewNotFoundError("Invoice")
}

func (s *invoiceStore) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Invoice], error) {
	now := time.Now()

	s.mu.RLock()
	owned := make([]entity.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if inv.MerchantID != merchantID {
			continue
		}
		// Expiry is derived on read, so the status column must be
		// rewritten before filtering. Otherwise a row rendered as
		// Expired would still match a search for "pending".
		if inv.ExpiredAt(now) {
			inv.Status = enum.InvoiceStatusExpired
		}
		owned = append(owned, inv)
	}
	s.mu.RUnlock()

	return listquery.Apply(owned, q, func(inv entity.Invoice) []listquery.Field {
		return []listquery.Field{
			listquery.Text("number", inv.Number),
			listquery.Text("customer", inv.CustomerName),
			listquery.Num("amount", float64(inv.Total)/100),
			listquery.Text("status", inv.Status.String()),
			dateField("created", inv.CreatedAt),
		}
	}), nil
}
