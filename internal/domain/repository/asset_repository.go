package repository

import (
	"context"

	"github.com/simplebit/merchant-api/internal/domain/entity"
)

// AssetRepository defines the interface for the supported crypto asset catalog
type AssetRepository interface {
	List(ctx context.Context) ([]entity.CryptoAsset, error)
	GetByID(ctx context.Context, id string) (*entity.CryptoAsset, error)
}
