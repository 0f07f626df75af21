package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// It is deliberately the same for an unknown email and a wrong password
	// so the endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already registered")
	// ErrInvalidRole is returned when the role is not job_seeker or employer.
	ErrInvalidRole = errors.New("role must be job_seeker or employer")
	// ErrCompanyRequired is returned when an employer registers without a company.
	ErrCompanyRequired = errors.New("company is required for employer")
)

// AuthService handles registration, login, and the current-user lookup.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role, company string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and issues a token.
func (s *authService) Register(ctx context.Context, username, email, password, role, company string) (string, *model.User, error) {
	if !model.ValidRole(role) {
		return "", nil, ErrInvalidRole
	}
	if role == model.RoleEmployer && company == "" {
		return "", nil, ErrCompanyRequired
	}

	if err := s.checkAvailability(ctx, username, email); err != nil {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Company:      company,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes back up the availability check; a racing
		// registration surfaces here as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrUserAlreadyExists
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Me returns the user for an authenticated identity. The password hash
// never marshals (json:"-" on the model).
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *authService) checkAvailability(ctx context.Context, username, email string) error {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	return nil
}
