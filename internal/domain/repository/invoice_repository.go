package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// List returns one filtered, sorted page of the merchant's invoices.
	// Pending invoices past their expiry are reported as Expired, without
	// the stored record being mutated.
	List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Invoice], error)
}
