package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/listquery"
)

type itemStore struct {
	mu    sync.RWMutex
	items []entity.Item
}

// NewItemStore creates an in-memory item repository
func NewItemStore() repository.ItemRepository {
	return &itemStore{}
}

func (s *itemStore) Create(ctx context.Context, item *entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *item)
	return nil
}

func (s *itemStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			it := s.items[i]
			return &it, nil
		}
	}
	return nil, apperror.NewNotFoundError("Item")
}

func (s *itemStore) Update(ctx context.Context, item *entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return apperror.NewNotFoundError("Item")
}

func (s *itemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Item")
}

func (s *itemStore) List(ctx context.Context, merchantID uuid.UUID, q listquery.Query) (listquery.Result[entity.Item], error) {
	s.mu.RLock()
	owned := make([]entity.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.MerchantID == merchantID {
			owned = append(owned, it)
		}
	}
	s.mu.RUnlock()

	return listquery.Apply(owned, q, func(it entity.Item) []listquery.Field {
		return []listquery.Field{
			listquery.Text("name", it.Name),
			listquery.Num("price", float64(it.Price)/100),
			listquery.Text("description", it.Description),
		}
	}), nil
}
