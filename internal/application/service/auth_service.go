package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/simplebit/merchant-api/internal/domain/entity"
	"github.com/simplebit/merchant-api/internal/domain/enum"
	"github.com/simplebit/merchant-api/internal/domain/repository"
	"github.com/simplebit/merchant-api/pkg/apperror"
	"github.com/simplebit/merchant-api/pkg/utils"
	"github.com/simplebit/merchant-api/pkg/validate"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a merchant and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	var form validate.Form
	form.Required("email", input.Email, "Email is required")
	form.Email("email", input.Email)
	form.Required("password", input.Password, "Password is required")
	if err := form.Err(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the signup form
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Country         string
	Password        string
	ConfirmPassword string
}

// Register creates a new merchant account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	var form validate.Form
	form.Required("firstName", input.FirstName, "First name is required")
	form.Required("lastName", input.LastName, "Last name is required")
	form.Required("email", input.Email, "Email is required")
	form.Email("email", input.Email)
	form.Required("phone", input.Phone, "Phone number is required")
	form.Required("country", input.Country, "Country is required")
	form.Password("password", input.Password)
	form.Match("confirmPassword", input.Password, input.ConfirmPassword, "Passwords do not match")
	if err := form.Err(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:        utils.NewUUID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Country:   input.Country,
		Password:  hash,
		KYCStatus: enum.KYCStatusUnverified,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword validates the reset request. Delivery of the reset link is
// out of scope here, so a valid email always succeeds regardless of whether
// an account exists; the response never leaks registration state.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var form validate.Form
	form.Required("email", email, "Email is required")
	form.Email("email", email)
	return form.Err()
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// ChangePasswordInput represents the change-password form
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePassword updates the merchant's password
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	var form validate.Form
	form.Required("currentPassword", input.CurrentPassword, "Current password is required")
	form.Password("newPassword", input.NewPassword)
	if input.NewPassword != "" && input.NewPassword == input.CurrentPassword {
		form.Add("newPassword", "New password must be different from current password")
	}
	form.Match("confirmPassword", input.NewPassword, input.ConfirmPassword, "Passwords do not match")
	if err := form.Err(); err != nil {
		return err
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewAppError(http.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}
