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

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.ItemRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, itemRepo repository.ItemRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
	}
}

// CreateInvoiceLineInput is one selected catalog row with its quantity
type CreateInvoiceLineInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CreateInvoiceInput represents the invoice creation form
type CreateInvoiceInput struct {
	CustomerName    string
	CustomerEmail   string
	Lines           []CreateInvoiceLineInput
	MunicipalityTax bool
	CustomerPaysFee bool
	ExpiryHours     int
}

// Create prices the selected lines and stores a pending invoice
func (s *InvoiceService) Create(ctx context.Context, merchantID uuid.UUID, input *CreateInvoiceInput) (*entity.Invoice, error) {
	var form validate.Form
	form.Email("customerEmail", input.CustomerEmail)
	if len(input.Lines) == 0 {
		form.Add("items", "Select at least one item")
	}
	for _, l := range input.Lines {
		if l.Quantity < 1 {
			form.Add("quantity", "Quantity must be at least 1")
			break
		}
	}
	expiry, ok := billing.ExpiryDuration(input.ExpiryHours)
	if !ok {
		form.Add("expiry", "Invalid expiry window")
	}
	if err := form.Err(); err != nil {
		return nil, err
	}

	lines := make([]entity.InvoiceLine, 0, len(input.Lines))
	priced := make([]billing.Line, 0, len(input.Lines))
	for _, l := range input.Lines {
		item, err := s.itemRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item.MerchantID != merchantID {
			return nil, apperror.ErrForbidden
		}
		lines = append(lines, entity.InvoiceLine{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  l.Quantity,
			Total:     item.Price * int64(l.Quantity),
		})
		priced = append(priced, billing.Line{Name: item.Name, UnitPrice: item.Price, Quantity: l.Quantity})
	}

	breakdown, err := billing.Compute(priced, billing.Options{
		MunicipalityTax: input.MunicipalityTax,
		CustomerPaysFee: input.CustomerPaysFee,
	})
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:              utils.NewUUID(),
		MerchantID:      merchantID,
		Number:          utils.GenerateInvoiceNo(now),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		Lines:           lines,
		Status:          enum.InvoiceStatusPending,
		MunicipalityTax: input.MunicipalityTax,
		CustomerPaysFee: input.CustomerPaysFee,
		SubTotal:        breakdown.Subtotal,
		VAT:             breakdown.VAT,
		MunicipalityFee: breakdown.MunicipalityFee,
		ServiceFee:      breakdown.ServiceFee,
		Total:           breakdown.Total,
		ExpiresAt:       now.Add(expiry),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// PreviewInput reprices a draft without storing it, mirroring the live
// totals panel on the creation screen.
type PreviewInput struct {
	Lines           []CreateInvoiceLineInput
	MunicipalityTax bool
	CustomerPaysFee bool
}

// Preview computes the breakdown for a draft selection
func (s *InvoiceService) Preview(ctx context.Context, merchantID uuid.UUID, input *PreviewInput) (*billing.Breakdown, error) {
	priced := make([]billing.Line, 0, len(input.Lines))
	for _, l := range input.Lines {
		item, err := s.itemRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item.MerchantID != merchantID {
			return nil, apperror.ErrForbidden
		}
		priced = append(priced, billing.Line{Name: item.Name, UnitPrice: item.Price, Quantity: l.Quantity})
	}

	breakdown, err := billing.Compute(priced, billing.Options{
		MunicipalityTax: input.MunicipalityTax,
		CustomerPaysFee: input.CustomerPaysFee,
	})
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	return &breakdown, nil
}

// List returns one page of the merchant's invoices. The repository reports
// pending invoices past their expiry as Expired, so search and sort operate
// on the same status text the table renders.
func (s *InvoiceService) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Invoice], error) {
	return s.invoiceRepo.List(ctx, merchantID, q)
}

// Get returns one invoice owned by the merchant
func (s *InvoiceService) Get(ctx context.Context, merchantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.MerchantID != merchantID {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.ExpiredAt(time.Now()) {
		invoice.Status = enum.InvoiceStatusExpired
	}
	return invoice, nil
}

// Cancel marks a pending invoice as cancelled
func (s *InvoiceService) Cancel(ctx context.Context, merchantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != enum.InvoiceStatusPending {
		return nil, apperror.NewConflictError("Only pending invoices can be cancelled")
	}
	invoice.Status = enum.InvoiceStatusCancelled
	invoice.UpdatedAt = time.Now()
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// MarkPaid settles a pending invoice in full, for out-of-band payments
func (s *InvoiceService) MarkPaid(ctx context.Context, merchantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.Payable() {
		return nil, apperror.ErrInvoiceNotPayable
	}
	invoice.Status = enum.InvoiceStatusPaid
	invoice.Paid = invoice.Total
	invoice.UpdatedAt = time.Now()
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
