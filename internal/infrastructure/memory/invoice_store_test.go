package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

func seedInvoices(t *testing.T, merchantID uuid.UUID) *invoiceStore {
	t.Helper()
	store := NewInvoiceStore().(*invoiceStore)
	ctx := context.Background()

	rows := []struct {
		number   string
		customer string
		total    int64
		status   enum.InvoiceStatus
		day      int
	}{
		{"INV-2025-001", "John Doe", 250000, enum.InvoiceStatusPaid, 18},
		{"INV-2025-002", "Jane Smith", 180000, enum.InvoiceStatusPending, 17},
		{"INV-2025-003", "Ahmed Ali", 320000, enum.InvoiceStatusExpired, 16},
		{"INV-2025-004", "Sarah Johnson", 95000, enum.InvoiceStatusCancelled, 15},
		{"INV-2025-005", "Michael Brown", 210000, enum.InvoiceStatusPaid, 14},
		{"INV-2025-006", "Lisa Anderson", 150000, enum.InvoiceStatusPending, 13},
	}
	for _, r := range rows {
		inv := &entity.Invoice{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Number:       r.number,
			CustomerName: r.customer,
			Status:       r.status,
			Total:        r.total,
			ExpiresAt:    time.Now().Add(48 * time.Hour),
			CreatedAt:    time.Date(2025, 12, r.day, 0, 0, 0, 0, time.UTC),
		}
		if err := store.Create(ctx, inv); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	return store
}

func listNumbers(items []entity.Invoice) []string {
	out := make([]string, len(items))
	for i, inv := range items {
		out[i] = inv.Number
	}
	return out
}

func TestInvoiceStoreListFilter(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)

	res, err := store.List(context.Background(), merchantID, listquery.Query{Search: "paid", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Total)
	}
	for _, inv := range res.Items {
		if inv.Status != enum.InvoiceStatusPaid {
			t.Errorf("filter leaked status %s", inv.Status)
		}
	}
}

func TestInvoiceStoreListFilterByDateText(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)

	// Dates filter by their rendered form.
	res, err := store.List(context.Background(), merchantID, listquery.Query{Search: "Dec 18", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 1 || res.Items[0].Number != "INV-2025-001" {
		t.Errorf("date filter = %v", listNumbers(res.Items))
	}
}

func TestInvoiceStoreListSortByAmount(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)
	ctx := context.Background()

	asc, err := store.List(ctx, merchantID, listquery.Query{SortKey: "amount", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"INV-2025-004", "INV-2025-006", "INV-2025-002", "INV-2025-005", "INV-2025-001", "INV-2025-003"}
	got := listNumbers(asc.Items)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ascending = %v, want %v", got, want)
		}
	}

	desc, err := store.List(ctx, merchantID, listquery.Query{SortKey: "amount", Desc: true, PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	gotDesc := listNumbers(desc.Items)
	for i := range want {
		if gotDesc[i] != want[len(want)-1-i] {
			t.Fatalf("descending = %v", gotDesc)
		}
	}
}

func TestInvoiceStoreListSortByDateChronological(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)

	res, err := store.List(context.Background(), merchantID, listquery.Query{SortKey: "created", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Oldest first, despite "Dec 13" sorting after "Dec 18" as text.
	if first := res.Items[0].Number; first != "INV-2025-006" {
		t.Errorf("first = %s, want INV-2025-006", first)
	}
	if last := res.Items[len(res.Items)-1].Number; last != "INV-2025-001" {
		t.Errorf("last = %s, want INV-2025-001", last)
	}
}

func TestInvoiceStoreListFiltersOnDerivedExpiry(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)
	ctx := context.Background()

	overdue := &entity.Invoice{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Number:       "INV-2025-007",
		CustomerName: "Omar Hassan",
		Status:       enum.InvoiceStatusPending,
		Total:        60000,
		ExpiresAt:    time.Now().Add(-time.Hour),
		CreatedAt:    time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := store.Create(ctx, overdue); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Searching by status must match what the table renders, not the
	// stored value the invoice was last written with.
	res, err := store.List(ctx, merchantID, listquery.Query{Search: "expired", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	found := false
	for _, inv := range res.Items {
		if inv.Status != enum.InvoiceStatusExpired {
			t.Errorf("filter leaked status %s", inv.Status)
		}
		if inv.Number == overdue.Number {
			found = true
		}
	}
	if !found {
		t.Error("overdue pending invoice not found by searching \"expired\"")
	}

	res, err = store.List(ctx, merchantID, listquery.Query{Search: "pending", PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, inv := range res.Items {
		if inv.Number == overdue.Number {
			t.Error("overdue invoice still matches \"pending\"")
		}
	}

	// The stored record keeps its written status.
	fresh, err := store.GetByID(ctx, overdue.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if fresh.Status != enum.InvoiceStatusPending {
		t.Errorf("stored status mutated to %s", fresh.Status)
	}
}

func TestInvoiceStoreListPagination(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)

	res, err := store.List(context.Background(), merchantID, listquery.Query{Page: 2, PageSize: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Page != 2 || res.TotalPages != 2 || len(res.Items) != 1 {
		t.Errorf("page 2 = %+v", res)
	}
	if res.Items[0].Number != "INV-2025-006" {
		t.Errorf("page 2 item = %s", res.Items[0].Number)
	}
}

func TestInvoiceStoreScopedToMerchant(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)

	other, err := store.List(context.Background(), uuid.New(), listquery.Query{PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if other.Total != 0 {
		t.Errorf("foreign merchant sees %d invoices", other.Total)
	}
}

func TestInvoiceStoreGetAndUpdate(t *testing.T) {
	merchantID := uuid.New()
	store := seedInvoices(t, merchantID)
	ctx := context.Background()

	inv, err := store.GetByNumber(ctx, "INV-2025-002")
	if err != nil {
		t.Fatalf("GetByNumber() error = %v", err)
	}

	inv.Status = enum.InvoiceStatusPaid
	inv.Paid = inv.Total
	if err := store.Update(ctx, inv); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// The stored copy changed, not just the returned one.
	fresh, err := store.GetByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if fresh.Status != enum.InvoiceStatusPaid || fresh.Remaining() != 0 {
		t.Errorf("update not persisted: %+v", fresh)
	}

	if _, err := store.GetByNumber(ctx, "INV-9999-000"); err == nil {
		t.Error("expected not found error")
	}
}
