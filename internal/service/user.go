package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// RegisterUserRequest represents the request to create a user
type RegisterUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone" validate:"max=12"`
	Gender    string `json:"gender" validate:"omitempty,oneof=F M"`
}

// UpdateUserRequest represents the request to update the current user. Nil fields are left as is.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone" validate:"omitempty,max=12"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=F M"`
}

// Register creates a user. A non-blank email must not be used by anyone else.
func (s *UserService) Register(ctx context.Context, req *RegisterUserRequest) (*CurrentUserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if err := s.checkUsernameFree(req.Username); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(req.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Gender:    req.Gender,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("new_user_id", user.ID).Info("Registered user")
	return newCurrentUserResponse(user), nil
}

// Get retrieves the public profile of a user
func (s *UserService) Get(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return newUserResponse(user), nil
}

// GetCurrent retrieves the profile of the authenticated user
func (s *UserService) GetCurrent(ctx context.Context, actor *permission.Actor) (*CurrentUserResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	user, err := s.repo.GetWithManagedTeams(actor.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return newCurrentUserResponse(user), nil
}

// UpdateCurrent changes the profile of the authenticated user
func (s *UserService) UpdateCurrent(ctx context.Context, actor *permission.Actor, req *UpdateUserRequest) (*CurrentUserResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.GetWithManagedTeams(actor.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(*req.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return newCurrentUserResponse(user), nil
}

// checkEmailFree fails when another user already has this non-blank email
func (s *UserService) checkEmailFree(email string, self uint) error {
	if email == "" {
		return nil
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrUserEmailExists
	}
	return nil
}

func (s *UserService) checkUsernameFree(username string) error {
	_, err := s.repo.GetByUsername(username)
	if err == nil {
		return apperrors.ErrUsernameExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check existing username: %w", err)
}
