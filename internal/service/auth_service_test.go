package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		role          string
		company       string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "job seeker without company succeeds",
			username: "jane",
			email:    "jane@example.com",
			role:     model.RoleJobSeeker,
			company:  "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "jane").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "employer without company fails",
			username:      "acme",
			email:         "acme@example.com",
			role:          model.RoleEmployer,
			company:       "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrCompanyRequired,
		},
		{
			name:     "employer with company succeeds",
			username: "acme",
			email:    "acme@example.com",
			role:     model.RoleEmployer,
			company:  "Acme Corp",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "acme@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "acme").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown role fails",
			username:      "bob",
			email:         "bob@example.com",
			role:          "admin",
			company:       "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrInvalidRole,
		},
		{
			name:     "email already registered",
			username: "jane2",
			email:    "jane@example.com",
			role:     model.RoleJobSeeker,
			company:  "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{Email: "jane@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "username already registered",
			username: "jane",
			email:    "other@example.com",
			role:     model.RoleJobSeeker,
			company:  "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "other@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "jane").Return(&model.User{Username: "jane"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			token, user, err := svc.Register(context.Background(), tt.username, tt.email, "password123", tt.role, tt.company)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "jane@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "jane@example.com",
					Role:         model.RoleJobSeeker,
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jane@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "jane@example.com",
					Role:         model.RoleJobSeeker,
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				// Unknown email and wrong password surface the exact same
				// error so accounts cannot be enumerated.
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	userID := uuid.New()

	t.Run("returns user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "jane",
			Email:    "jane@example.com",
			Role:     model.RoleJobSeeker,
		}, nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.Me(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "jane", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.Me(context.Background(), userID)

		assert.Error(t, err)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}
