package memory

import (
	"context"
	"time"

	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// Stores bundles the repositories handed to the service layer.
type Stores struct {
	Users        repository.UserRepository
	Items        repository.ItemRepository
	Invoices     repository.InvoiceRepository
	Transactions repository.TransactionRepository
	Payouts      repository.PayoutRepository
	BankAccounts repository.BankAccountRepository
	Assets       repository.AssetRepository
}

// NewStores creates the full set of in-memory repositories.
func NewStores() *Stores {
	return &Stores{
		Users:        NewUserStore(),
		Items:        NewItemStore(),
		Invoices:     NewInvoiceStore(),
		Transactions: NewTransactionStore(),
		Payouts:      NewPayoutStore(),
		BankAccounts: NewBankAccountStore(),
		Assets:       NewAssetStore(),
	}
}

// SeedDemo loads a demo merchant with the sample catalog, invoices,
// transactions and payouts so the dashboard has data on first boot.
// The demo login is demo@simple-bit.com / Demo1234!.
func (s *Stores) SeedDemo(ctx context.Context) error {
	hash, err := utils.HashPassword("Demo1234!")
	if err != nil {
		return err
	}

	now := time.Now()
	merchant := entity.User{
		ID:              utils.NewUUID(),
		FirstName:       "Parveen",
		LastName:        "Kumar",
		Email:           "demo@simple-bit.com",
		Phone:           "+971501234567",
		Country:         "United Arab Emirates",
		Password:        hash,
		BusinessName:    "Parveen Trading LLC",
		BusinessAddress: "Office 1204, Business Bay, Dubai",
		BusinessPhone:   "+97143334444",
		Website:         "https://parveen-trading.example.com",
		Description:     "General trading and digital services",
		KYCStatus:       enum.KYCStatusVerified,
		CreatedAt:       now.AddDate(-1, 0, 0),
		UpdatedAt:       now,
	}
	if err := s.Users.Create(ctx, &merchant); err != nil {
		return err
	}

	items := []entity.Item{
		{Name: "Web Development", Price: 10000, Description: "Professional web development services"},
		{Name: "Mobile App", Price: 20000, Description: "Cross-platform mobile application"},
		{Name: "Consulting", Price: 15000, Description: "Business consulting hours"},
		{Name: "Design Services", Price: 25000, Description: "UI/UX design and branding"},
		{Name: "Hosting", Price: 5000, Description: "Annual hosting package"},
	}
	for i := range items {
		items[i].ID = utils.NewUUID()
		items[i].MerchantID = merchant.ID
		items[i].CreatedAt = now.AddDate(0, -1, i)
		if err := s.Items.Create(ctx, &items[i]); err != nil {
			return err
		}
	}

	account := entity.BankAccount{
		ID:            utils.NewUUID(),
		MerchantID:    merchant.ID,
		BankName:      "Emirates NBD",
		AccountHolder: merchant.FullName(),
		AccountNumber: utils.MaskAccountNumber("1050011111"),
		Status:        "active",
		CreatedAt:     now.AddDate(0, -6, 0),
	}
	if err := s.BankAccounts.Create(ctx, &account); err != nil {
		return err
	}

	invoices := []struct {
		customer string
		email    string
		amount   int64
		status   enum.InvoiceStatus
		age      int
	}{
		{"John Doe", "john@example.com", 250000, enum.InvoiceStatusPaid, 3},
		{"Jane Smith", "jane@example.com", 180000, enum.InvoiceStatusPending, 4},
		{"Ahmed Ali", "ahmed@example.com", 320000, enum.InvoiceStatusExpired, 5},
		{"Sarah Johnson", "sarah@example.com", 95000, enum.InvoiceStatusCancelled, 6},
		{"Michael Brown", "michael@example.com", 210000, enum.InvoiceStatusPaid, 7},
		{"Lisa Anderson", "lisa@example.com", 150000, enum.InvoiceStatusPending, 8},
	}
	for _, row := range invoices {
		created := now.AddDate(0, 0, -row.age)
		inv := entity.Invoice{
			ID:            utils.NewUUID(),
			MerchantID:    merchant.ID,
			Number:        utils.GenerateInvoiceNo(created),
			CustomerName:  row.customer,
			CustomerEmail: row.email,
			Status:        row.status,
			SubTotal:      row.amount,
			Total:         row.amount,
			ExpiresAt:     created.Add(48 * time.Hour),
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		if row.status == enum.InvoiceStatusPaid {
			inv.Paid = inv.Total
		}
		if err := s.Invoices.Create(ctx, &inv); err != nil {
			return err
		}

		if row.status == enum.InvoiceStatusPaid {
			tx := entity.Transaction{
				ID:         utils.NewUUID(),
				MerchantID: merchant.ID,
				Reference:  utils.GeneratePaymentRef(),
				InvoiceNo:  inv.Number,
				AssetID:    "usdt-bsc",
				Asset:      "USDT:BSC",
				Status:     enum.TransactionStatusFinished,
				Amount:     inv.Total,
				CreatedAt:  created.Add(2 * time.Hour),
				UpdatedAt:  created.Add(2 * time.Hour),
			}
			if err := s.Transactions.Create(ctx, &tx); err != nil {
				return err
			}
		}
	}

	payouts := []struct {
		amount      int64
		status      enum.PayoutStatus
		processedBy string
		age         int
	}{
		{1100, enum.PayoutStatusPending, "", 1},
		{15000, enum.PayoutStatusCompleted, "Admin", 10},
		{20000, enum.PayoutStatusProcessing, "", 20},
	}
	for _, row := range payouts {
		requested := now.AddDate(0, 0, -row.age)
		p := entity.Payout{
			ID:          utils.NewUUID(),
			MerchantID:  merchant.ID,
			Amount:      row.amount,
			Status:      row.status,
			BankAccount: account.Label(),
			ProcessedBy: row.processedBy,
			RequestedAt: requested,
		}
		if row.status == enum.PayoutStatusCompleted {
			processed := requested.AddDate(0, 0, 3)
			p.ProcessedAt = &processed
		}
		if err := s.Payouts.Create(ctx, &p); err != nil {
			return err
		}
	}

	return nil
}
