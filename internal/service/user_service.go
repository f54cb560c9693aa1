package service

import (
	"context"
	"fmt"

	"citizen_registry/internal/model"
	"citizen_registry/internal/repository"
	"citizen_registry/internal/utils"
)

// UserService provides self-profile and account summary operations. The
// caller id always comes from the resolved bearer token, never from a path
// parameter.
type UserService interface {
	Me(ctx context.Context, userID int64) (*model.User, error)
	UpdateMe(ctx context.Context, userID int64, req model.UpdateUserRequest) (*model.User, error)
	DeleteMe(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]model.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateMe applies a partial profile update. A password change is re-hashed;
// an email change is re-normalized and re-checked for uniqueness.
func (s *userService) UpdateMe(ctx context.Context, userID int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email == "" {
			return nil, NewValidationError("email", "the field email is required")
		}
		if email != user.Email {
			existing, err := s.userRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing user: %w", err)
			}
			if existing != nil && existing.ID != userID {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < 5 {
			return nil, NewValidationError("password", "ensure this field has at least 5 characters")
		}
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// DeleteMe hard-deletes the caller's account; owned citizen records cascade.
func (s *userService) DeleteMe(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile for deletion: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func (s *userService) List(ctx context.Context) ([]model.Profile, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	profiles := make([]model.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
