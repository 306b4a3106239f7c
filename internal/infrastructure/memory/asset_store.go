package memory

import (
	"context"

	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
)

// assets is the static catalog of accepted payment assets. Minimums are
// 50.00 AED in fils.
var assets = []entity.CryptoAsset{
	{ID: "usdt-trc20", Name: "USDT (TRC-20)", Code: "USDTTRC20", Network: "TRON", EstTime: "~5 min", MinAmount: 5000, Confirmations: 20},
	{ID: "usdt-bsc", Name: "USDT (BEP-20)", Code: "USDTBSC", Network: "BSC", EstTime: "~3 min", MinAmount: 5000, Confirmations: 20},
	{ID: "usdt-solana", Name: "USDT (Solana)", Code: "USDTSOL", Network: "Solana", EstTime: "~1 min", MinAmount: 5000, Confirmations: 20},
	{ID: "usdt-polygon", Name: "USDT (Polygon)", Code: "USDTMATIC", Network: "Polygon", EstTime: "~2 min", MinAmount: 5000, Confirmations: 20},
}

type assetStore struct{}

// NewAssetStore creates the static crypto asset catalog
func NewAssetStore() repository.AssetRepository {
	return &assetStore{}
}

func (s *assetStore) List(ctx context.Context) ([]entity.CryptoAsset, error) {
	out := make([]entity.CryptoAsset, len(assets))
	copy(out, assets)
	return out, nil
}

func (s *assetStore) GetByID(ctx context.Context, id string) (*entity.CryptoAsset, error) {
	for i := range assets {
		if assets[i].ID == id {
			a := assets[i]
			return &a, nil
		}
	}
	return nil, apperror.NewNotFoundError("Asset")
}
