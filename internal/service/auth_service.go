package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"citizen_registry/internal/model"
	"citizen_registry/internal/repository"
	"citizen_registry/internal/utils"
)

// AuthService provides account creation and credential verification
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	RegisterAdmin(ctx context.Context, email, name, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// NormalizeEmail lower-cases an address the way it is stored
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The email is case-normalized and the
// password irreversibly hashed before storage.
func (s *authService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	if len(password) < 5 {
		return nil, NewValidationError("password", "ensure this field has at least 5 characters")
	}
	return s.createUser(ctx, email, name, password, false)
}

// RegisterAdmin creates an account carrying the staff and superuser flags.
// Used by the startup bootstrap; there is no HTTP route for it, and only an
// empty password is rejected.
func (s *authService) RegisterAdmin(ctx context.Context, email, name, password string) (*model.User, error) {
	if password == "" {
		return nil, NewValidationError("password", "the password is required for an admin account")
	}
	return s.createUser(ctx, email, name, password, true)
}

func (s *authService) createUser(ctx context.Context, email, name, password string, admin bool) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, NewValidationError("email", "the field email is required")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		IsActive:     true,
		IsStaff:      admin,
		IsSuperuser:  admin,
		Created:      time.Now(),
		Updated:      time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. The error never
// reveals which field was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil || !user.IsActive {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
