package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/billing"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// PaymentService handles the public payment flow: viewing an invoice,
// choosing an asset and amount, and confirming a crypto transaction.
type PaymentService struct {
	invoiceRepo repository.InvoiceRepository
	txRepo      repository.TransactionRepository
	assetRepo   repository.AssetRepository
	userRepo    repository.UserRepository

	// settleMu serializes Confirm. Settling reads then rewrites both the
	// transaction and the invoice balance, and two concurrent confirms
	// against the same invoice must not credit it from stale reads.
	settleMu sync.Mutex
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
	assetRepo repository.AssetRepository,
	userRepo repository.UserRepository,
) *PaymentService {
	return &PaymentService{
		invoiceRepo: invoiceRepo,
		txRepo:      txRepo,
		assetRepo:   assetRepo,
		userRepo:    userRepo,
	}
}

// PublicInvoice is the payer-facing view of an invoice with its
// merchant's business details.
type PublicInvoice struct {
	Invoice    *entity.Invoice `json:"invoice"`
	Business   string          `json:"business"`
	Address    string          `json:"address,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	TipOptions []int           `json:"tip_options"`
}

// GetPublicInvoice returns the payer view of an invoice by number
func (s *PaymentService) GetPublicInvoice(ctx context.Context, number string) (*PublicInvoice, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if invoice.ExpiredAt(time.Now()) {
		invoice.Status = enum.InvoiceStatusExpired
	}

	out := &PublicInvoice{Invoice: invoice, TipOptions: billing.TipPercentOptions}
	if merchant, err := s.userRepo.GetByID(ctx, invoice.MerchantID); err == nil {
		out.Business = merchant.BusinessName
		out.Address = merchant.BusinessAddress
		out.Phone = merchant.BusinessPhone
	}
	return out, nil
}

// ListAssets returns the payment asset catalog
func (s *PaymentService) ListAssets(ctx context.Context) ([]entity.CryptoAsset, error) {
	return s.assetRepo.List(ctx)
}

// InitiateInput represents the pay-with form: asset selection, amount in
// fils (zero means pay the full remaining balance), and an optional tip.
type InitiateInput struct {
	AssetID string
	Amount  int64
	Tip     billing.Tip
}

// Initiate creates a pending transaction against a payable invoice
func (s *PaymentService) Initiate(ctx context.Context, number string, input *InitiateInput) (*entity.Transaction, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if invoice.ExpiredAt(now) || !invoice.Status.Payable() {
		return nil, apperror.ErrInvoiceNotPayable
	}

	asset, err := s.assetRepo.GetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	if input.Tip.Percent != 0 && !billing.ValidTipPercent(input.Tip.Percent) {
		return nil, apperror.NewBadRequestError("Unsupported tip percentage")
	}

	remaining := invoice.Remaining()
	amount := input.Amount
	if amount == 0 {
		// MAX selection pays whatever is left.
		amount = remaining
	}
	if amount < 0 || amount > remaining {
		return nil, apperror.NewBadRequestError("Amount exceeds remaining balance")
	}
	if amount < asset.MinAmount {
		return nil, apperror.NewBadRequestError("Amount is below the minimum for this asset")
	}

	tx := &entity.Transaction{
		ID:             utils.NewUUID(),
		MerchantID:     invoice.MerchantID,
		Reference:      utils.GeneratePaymentRef(),
		InvoiceNo:      invoice.Number,
		AssetID:        asset.ID,
		Asset:          asset.Label(),
		Status:         enum.TransactionStatusPending,
		Amount:         amount,
		Tip:            input.Tip.Amount(amount),
		DepositAddress: depositAddress(asset.Network),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if invoice.CustomerPaysFee {
		tx.ServiceFee = billing.ServiceFeeOn(amount)
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetByReference returns a transaction by its payment reference
func (s *PaymentService) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	return s.txRepo.GetByReference(ctx, reference)
}

// Confirm settles a pending transaction and credits the invoice. The
// invoice flips to Paid once nothing remains.
func (s *PaymentService) Confirm(ctx context.Context, reference string) (*entity.Transaction, error) {
	s.settleMu.Lock()
	defer s.settleMu.Unlock()

	tx, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx.Status != enum.TransactionStatusPending {
		return nil, apperror.NewConflictError("Transaction already settled")
	}

	invoice, err := s.invoiceRepo.GetByNumber(ctx, tx.InvoiceNo)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.Payable() {
		return nil, apperror.ErrInvoiceNotPayable
	}

	now := time.Now()
	tx.Status = enum.TransactionStatusFinished
	tx.UpdatedAt = now
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	invoice.Paid += tx.Amount
	if invoice.Remaining() == 0 {
		invoice.Status = enum.InvoiceStatusPaid
	}
	invoice.UpdatedAt = now
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return tx, nil
}

// depositAddress derives a demo deposit address for the chosen network.
// No wallet integration runs behind it.
func depositAddress(network string) string {
	id := strings.ReplaceAll(utils.NewUUID().String()+utils.NewUUID().String(), "-", "")
	switch strings.ToLower(network) {
	case "tron":
		return "T" + strings.ToUpper(id[:33])
	case "solana":
		return id[:32]
	default:
		return "0x" + id[:40]
	}
}
