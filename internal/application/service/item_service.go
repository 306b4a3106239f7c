package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/billing"
	"github.com/simplebit/merchant-api/pkg/listquery"
	"github.com/simplebit/merchant-api/pkg/utils"
	"github.com/simplebit/merchant-api/pkg/validate"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ItemInput represents the item create/edit form. Price is in AED.
type ItemInput struct {
	Name        string
	Price       float64
	Description string
}

func (s *ItemService) validateInput(input *ItemInput) error {
	var form validate.Form
	form.Required("name", input.Name, "Item name is required")
	form.Positive("price", input.Price, "Price must be greater than 0")
	return form.Err()
}

// Create adds a catalog item
func (s *ItemService) Create(ctx context.Context, merchantID uuid.UUID, input *ItemInput) (*entity.Item, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	item := &entity.Item{
		ID:          utils.NewUUID(),
		MerchantID:  merchantID,
		Name:        input.Name,
		Price:       billing.FromAED(input.Price),
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update edits a catalog item owned by the merchant
func (s *ItemService) Update(ctx context.Context, merchantID, id uuid.UUID, input *ItemInput) (*entity.Item, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.MerchantID != merchantID {
		return nil, apperror.NewNotFoundError("Item")
	}

	item.Name = input.Name
	item.Price = billing.FromAED(input.Price)
	item.Description = input.Description
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a catalog item owned by the merchant
func (s *ItemService) Delete(ctx context.Context, merchantID, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.MerchantID != merchantID {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// List returns one page of the merchant's catalog
func (s *ItemService) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Item], error) {
	return s.itemRepo.List(ctx, merchantID, q)
}
