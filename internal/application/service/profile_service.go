package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/validate"
)

// ProfileService handles the merchant profile screens
type ProfileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Get returns the merchant's profile
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// KYC returns the merchant's verification state for the profile screen.
// Verification itself runs elsewhere; this is read-only here.
func (s *ProfileService) KYC(ctx context.Context, userID uuid.UUID) (enum.KYCStatus, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return enum.KYCStatusUnverified, err
	}
	return user.KYCStatus, nil
}

// UpdateProfileInput represents the business profile form
type UpdateProfileInput struct {
	FirstName       string
	LastName        string
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	Website         string
	Description     string
}

// Update saves the business profile
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error) {
	var form validate.Form
	form.Required("firstName", input.FirstName, "First name is required")
	form.Required("lastName", input.LastName, "Last name is required")
	form.Required("businessName", input.BusinessName, "Business name is required")
	form.URL("website", input.Website)
	if err := form.Err(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.BusinessName = input.BusinessName
	user.BusinessAddress = input.BusinessAddress
	user.BusinessPhone = input.BusinessPhone
	user.Website = input.Website
	user.Description = input.Description
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
