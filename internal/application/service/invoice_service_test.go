package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/infrastructure/memory"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/billing"
)

func newInvoiceFixture(t *testing.T) (*InvoiceService, *memory.Stores, uuid.UUID, uuid.UUID) {
	t.Helper()
	stores := memory.NewStores()
	merchantID := uuid.New()
	item := &entity.Item{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Name:       "Web Development",
		Price:      10000,
		CreatedAt:  time.Now(),
	}
	if err := stores.Items.Create(context.Background(), item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return NewInvoiceService(stores.Invoices, stores.Items), stores, merchantID, item.ID
}

func TestInvoiceCreate(t *testing.T) {
	svc, _, merchantID, itemID := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, merchantID, &CreateInvoiceInput{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Lines:         []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
		ExpiryHours:   billing.Expiry48Hours,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if inv.SubTotal != 10000 || inv.VAT != 500 || inv.Total != 10500 {
		t.Errorf("breakdown = subtotal %d vat %d total %d", inv.SubTotal, inv.VAT, inv.Total)
	}
	if inv.Status != enum.InvoiceStatusPending {
		t.Errorf("status = %s, want Pending", inv.Status)
	}
	if inv.Number == "" {
		t.Error("missing invoice number")
	}
	if got := inv.ExpiresAt.Sub(inv.CreatedAt); got != 48*time.Hour {
		t.Errorf("expiry window = %v, want 48h", got)
	}
	if inv.Remaining() != 10500 {
		t.Errorf("remaining = %d, want 10500", inv.Remaining())
	}
}

func TestInvoiceCreateMunicipalityTax(t *testing.T) {
	svc, _, merchantID, itemID := newInvoiceFixture(t)

	inv, err := svc.Create(context.Background(), merchantID, &CreateInvoiceInput{
		Lines:           []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
		MunicipalityTax: true,
		ExpiryHours:     billing.Expiry24Hours,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if inv.MunicipalityFee != 500 || inv.Total != 11000 {
		t.Errorf("municipality %d total %d, want 500 / 11000", inv.MunicipalityFee, inv.Total)
	}
}

func TestInvoiceCreateValidation(t *testing.T) {
	svc, _, merchantID, itemID := newInvoiceFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateInvoiceInput
	}{
		{"no lines", CreateInvoiceInput{ExpiryHours: 24}},
		{"zero quantity", CreateInvoiceInput{
			Lines:       []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 0}},
			ExpiryHours: 24,
		}},
		{"bad email", CreateInvoiceInput{
			CustomerEmail: "not-an-email",
			Lines:         []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
			ExpiryHours:   24,
		}},
		{"bad expiry", CreateInvoiceInput{
			Lines:       []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
			ExpiryHours: 72,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, merchantID, &tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Code != 422 {
				t.Errorf("error = %v, want 422 validation error", err)
			}
		})
	}
}

func TestInvoiceCreateForeignItem(t *testing.T) {
	svc, _, _, itemID := newInvoiceFixture(t)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateInvoiceInput{
		Lines:       []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
		ExpiryHours: 24,
	})
	if err == nil {
		t.Fatal("expected error for another merchant's item")
	}
}

func TestInvoiceCancel(t *testing.T) {
	svc, _, merchantID, itemID := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, merchantID, &CreateInvoiceInput{
		Lines:       []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
		ExpiryHours: 24,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	cancelled, err := svc.Cancel(ctx, merchantID, inv.ID)
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if cancelled.Status != enum.InvoiceStatusCancelled {
		t.Errorf("status = %s, want Cancelled", cancelled.Status)
	}

	// Cancelling twice conflicts.
	if _, err := svc.Cancel(ctx, merchantID, inv.ID); err == nil {
		t.Error("expected conflict on second cancel")
	}
}

func TestInvoiceExpiryDerivedOnRead(t *testing.T) {
	svc, stores, merchantID, itemID := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, merchantID, &CreateInvoiceInput{
		Lines:       []CreateInvoiceLineInput{{ItemID: itemID, Quantity: 1}},
		ExpiryHours: 24,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Push the stored expiry into the past.
	inv.ExpiresAt = time.Now().Add(-time.Hour)
	if err := stores.Invoices.Update(ctx, inv); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := svc.Get(ctx, merchantID, inv.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != enum.InvoiceStatusExpired {
		t.Errorf("status = %s, want Expired", got.Status)
	}
}
