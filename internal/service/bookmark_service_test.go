package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestBookmarkService_Save(t *testing.T) {
	jobID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockJobRepository)
		expectedError error
	}{
		{
			name: "missing job maps to not found",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
		{
			name: "already saved conflicts",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
				m.On("AddBookmark", mock.Anything, jobID, userID).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrJobAlreadySaved,
		},
		{
			name: "first save succeeds",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
				m.On("AddBookmark", mock.Anything, jobID, userID).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockJobRepository)
			tt.setupMock(mockRepo)

			svc := NewBookmarkService(mockRepo)
			err := svc.Save(context.Background(), userID, jobID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookmarkService_Unsave(t *testing.T) {
	jobID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockJobRepository)
		expectedError error
	}{
		{
			name: "missing job maps to not found",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
		{
			name: "not saved reports not bookmarked",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
				m.On("RemoveBookmark", mock.Anything, jobID, userID).Return(false, nil)
			},
			expectedError: apperrors.ErrJobNotSaved,
		},
		{
			name: "saved bookmark removed",
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
				m.On("RemoveBookmark", mock.Anything, jobID, userID).Return(true, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockJobRepository)
			tt.setupMock(mockRepo)

			svc := NewBookmarkService(mockRepo)
			err := svc.Unsave(context.Background(), userID, jobID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookmarkService_ListSaved(t *testing.T) {
	userID := uuid.New()

	t.Run("returns bookmarked jobs", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("ListBookmarked", mock.Anything, userID).Return([]model.Job{
			{Title: "Backend Engineer"},
		}, nil)

		svc := NewBookmarkService(mockRepo)
		jobs, err := svc.ListSaved(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no bookmarks yields empty slice", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("ListBookmarked", mock.Anything, userID).Return(nil, nil)

		svc := NewBookmarkService(mockRepo)
		jobs, err := svc.ListSaved(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
		mockRepo.AssertExpectations(t)
	})
}
