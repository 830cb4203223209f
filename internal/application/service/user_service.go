package service

import (
	"context"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles operator management. The route layer restricts every
// method here to the owner.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Username string
	Name     string
	Password string
	Role     string
}

// CreateUser creates a new operator account
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	role := enum.UserRole(input.Role)
	if input.Role == "" {
		role = enum.UserRoleShopkeeper
	}
	if !role.Valid() {
		return nil, apperror.NewValidationError("Invalid role: must be owner or shopkeeper")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewValidationError("Password must be at least 6 characters")
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Name:     input.Name,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the update user input; nil fields are left unchanged
type UpdateUserInput struct {
	Name     *string
	Password *string
	Role     *string
}

// UpdateUser updates an operator account
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		role := enum.UserRole(*input.Role)
		if !role.Valid() {
			return nil, apperror.NewValidationError("Invalid role: must be owner or shopkeeper")
		}
		user.Role = role
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, apperror.NewValidationError("Password must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves an operator by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists operator accounts
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

// DeleteUser removes an operator account. An owner cannot delete itself so
// the shop never locks itself out.
func (s *UserService) DeleteUser(ctx context.Context, id, requesterID uuid.UUID) error {
	if id == requesterID {
		return apperror.NewBadRequestError("You cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}
