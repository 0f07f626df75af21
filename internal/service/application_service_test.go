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

func TestApplicationService_Apply(t *testing.T) {
	jobID := uuid.New()
	applicantID := uuid.New()

	t.Run("missing job maps to not found", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		app, err := svc.Apply(context.Background(), applicantID, jobID, "hi", "http://x")

		assert.Nil(t, app)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
		mockJobs.AssertExpectations(t)
	})

	t.Run("duplicate application conflicts", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(gorm.ErrDuplicatedKey)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		app, err := svc.Apply(context.Background(), applicantID, jobID, "hi", "http://x")

		assert.Nil(t, app)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
		mockApps.AssertExpectations(t)
	})

	t.Run("new application starts pending", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		app, err := svc.Apply(context.Background(), applicantID, jobID, "hi", "http://x")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, app.Status)
		assert.Equal(t, jobID, app.JobID)
		assert.Equal(t, applicantID, app.ApplicantID)
		assert.Equal(t, "hi", app.CoverLetter)
		assert.Equal(t, "http://x", app.ResumeLink)
		mockApps.AssertExpectations(t)
	})
}

func TestApplicationService_ListForJob(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	t.Run("only the owning employer may list", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: ownerID}, nil)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		apps, err := svc.ListForJob(context.Background(), jobID, strangerID)

		assert.Nil(t, apps)
		assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
		mockJobs.AssertExpectations(t)
	})

	t.Run("owner lists applications", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: ownerID}, nil)
		mockApps.On("ListByJob", mock.Anything, jobID).Return([]model.Application{
			{JobID: jobID, Status: model.StatusPending, Applicant: &model.User{Username: "jane"}},
		}, nil)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		apps, err := svc.ListForJob(context.Background(), jobID, ownerID)

		assert.NoError(t, err)
		assert.Len(t, apps, 1)
		assert.Equal(t, "jane", apps[0].Applicant.Username)
		mockJobs.AssertExpectations(t)
		mockApps.AssertExpectations(t)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	jobID := uuid.New()
	appID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	t.Run("unrecognized status rejected", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		app, err := svc.UpdateStatus(context.Background(), appID, ownerID, "ghosted")

		assert.Nil(t, app)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("missing application maps to not found", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockApps.On("FindByID", mock.Anything, appID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		_, err := svc.UpdateStatus(context.Background(), appID, ownerID, model.StatusInterview)

		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
		mockApps.AssertExpectations(t)
	})

	t.Run("only the owning employer may update", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockApps.On("FindByID", mock.Anything, appID).Return(&model.Application{ID: appID, JobID: jobID}, nil)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: ownerID}, nil)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		_, err := svc.UpdateStatus(context.Background(), appID, strangerID, model.StatusHired)

		assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
		mockApps.AssertExpectations(t)
		mockJobs.AssertExpectations(t)
	})

	t.Run("owner updates status", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApps := new(MockApplicationRepository)
		mockApps.On("FindByID", mock.Anything, appID).Return(&model.Application{
			ID:     appID,
			JobID:  jobID,
			Status: model.StatusPending,
		}, nil)
		mockJobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: ownerID}, nil)
		mockApps.On("Save", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		svc := NewApplicationService(mockApps, mockJobs, nil)
		app, err := svc.UpdateStatus(context.Background(), appID, ownerID, model.StatusInterview)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusInterview, app.Status)
		mockApps.AssertExpectations(t)
		mockJobs.AssertExpectations(t)
	})
}

func TestApplicationService_ListMine(t *testing.T) {
	applicantID := uuid.New()

	mockJobs := new(MockJobRepository)
	mockApps := new(MockApplicationRepository)
	mockApps.On("ListByApplicant", mock.Anything, applicantID).Return([]model.Application{
		{ApplicantID: applicantID, Job: &model.Job{Title: "Backend Engineer", Company: "Acme Corp"}},
	}, nil)

	svc := NewApplicationService(mockApps, mockJobs, nil)
	apps, err := svc.ListMine(context.Background(), applicantID)

	assert.NoError(t, err)
	assert.Len(t, apps, 1)
	assert.Equal(t, "Acme Corp", apps[0].Job.Company)
	mockApps.AssertExpectations(t)
}
