package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

// recentTransactionLimit caps the dashboard's recent activity panel.
const recentTransactionLimit = 5

// DashboardService aggregates the overview screen's panels
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	payoutRepo  repository.PayoutRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	payoutRepo repository.PayoutRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		payoutRepo:  payoutRepo,
	}
}

// Stats are the overview cards: counts plus the settled balance still
// available for payout, in fils.
type Stats struct {
	AvailableBalance  int64 `json:"-"`
	TotalInvoices     int   `json:"total_invoices"`
	TotalItems        int   `json:"total_items"`
	TotalTransactions int   `json:"total_transactions"`
}

// MarshalJSON converts the fils balance to a decimal for API responses
func (s Stats) MarshalJSON() ([]byte, error) {
	type Alias Stats
	return json.Marshal(&struct {
		Alias
		AvailableBalance float64 `json:"available_balance"`
	}{
		Alias:            Alias(s),
		AvailableBalance: float64(s.AvailableBalance) / 100,
	})
}

// PopularCrypto is one row of the asset breakdown panel
type PopularCrypto struct {
	Asset  string  `json:"asset"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Overview is the full dashboard payload
type Overview struct {
	Stats          Stats                `json:"stats"`
	PopularCryptos []PopularCrypto      `json:"popular_cryptos"`
	Recent         []entity.Transaction `json:"recent_transactions"`
}

// Get builds the merchant's dashboard overview
func (s *DashboardService) Get(ctx context.Context, merchantID uuid.UUID) (*Overview, error) {
	txs, err := s.txRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payoutRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	// Settled income minus everything requested for payout that was not
	// rejected.
	var balance int64
	type bucket struct {
		count  int
		amount int64
	}
	byAsset := make(map[string]*bucket)
	for _, tx := range txs {
		if tx.Status != enum.TransactionStatusFinished {
			continue
		}
		balance += tx.Amount
		b := byAsset[tx.Asset]
		if b == nil {
			b = &bucket{}
			byAsset[tx.Asset] = b
		}
		b.count++
		b.amount += tx.Charged()
	}
	for _, p := range payouts {
		if p.Status != enum.PayoutStatusRejected {
			balance -= p.Amount
		}
	}

	cryptos := make([]PopularCrypto, 0, len(byAsset))
	for asset, b := range byAsset {
		cryptos = append(cryptos, PopularCrypto{
			Asset:  asset,
			Count:  b.count,
			Amount: float64(b.amount) / 100,
		})
	}
	sort.Slice(cryptos, func(i, j int) bool {
		if cryptos[i].Count != cryptos[j].Count {
			return cryptos[i].Count > cryptos[j].Count
		}
		return cryptos[i].Asset < cryptos[j].Asset
	})

	recent, err := s.txRepo.ListRecent(ctx, merchantID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	// Single-row list queries are the cheapest way to get totals.
	one := listquery.Query{Page: 1, PageSize: 1}
	invoices, err := s.invoiceRepo.List(ctx, merchantID, one)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.List(ctx, merchantID, one)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Stats: Stats{
			AvailableBalance:  balance,
			TotalInvoices:     invoices.Total,
			TotalItems:        items.Total,
			TotalTransactions: len(txs),
		},
		PopularCryptos: cryptos,
		Recent:         recent,
	}, nil
}
