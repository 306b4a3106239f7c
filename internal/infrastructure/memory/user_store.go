// Package memory provides mutex-guarded in-memory implementations of the
// domain repositories. Every store keeps records in a slice so insertion
// order is preserved, which the stable list sort relies on for ties.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
)

type userStore struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserStore creates an in-memory user repository
func NewUserStore() repository.UserRepository {
	return &userStore{}
}

func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperror.NewConflictError("Email already registered")
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperror.NewNotFoundError("User")
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperror.NewNotFoundError("User")
}

func (s *userStore) Update(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return apperror.NewNotFoundError("User")
}
