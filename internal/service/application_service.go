package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/cache"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// ApplicationService exposes application tracking operations. Listing and
// status updates for a job's applications are restricted to the job's
// owning employer.
type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID, coverLetter, resumeLink string) (*model.Application, error)
	ListForJob(ctx context.Context, jobID, callerID uuid.UUID) ([]model.Application, error)
	UpdateStatus(ctx context.Context, applicationID, callerID uuid.UUID, status string) (*model.Application, error)
	ListMine(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error)
}

type applicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
	cache   *cache.Client
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, cache *cache.Client) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, cache: cache}
}

// Apply creates a pending application. One application per (job, applicant)
// pair; the unique index turns a re-apply into a conflict.
func (s *applicationService) Apply(ctx context.Context, applicantID, jobID uuid.UUID, coverLetter, resumeLink string) (*model.Application, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	app := &model.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: coverLetter,
		ResumeLink:  resumeLink,
		Status:      model.StatusPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	// The cached job detail embeds applications.
	_ = s.cache.Delete(ctx, jobCacheKey(jobID))
	return app, nil
}

// ListForJob returns a job's applications with applicant identities.
// Only the owning employer may call it.
func (s *applicationService) ListForJob(ctx context.Context, jobID, callerID uuid.UUID) ([]model.Application, error) {
	if err := s.requireJobOwner(ctx, jobID, callerID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if apps == nil {
		apps = []model.Application{}
	}
	return apps, nil
}

// UpdateStatus sets an application's status. The caller must own the job
// the application targets, and the status must be a recognized value.
// There is no transition graph; any status may follow any other.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, callerID uuid.UUID, status string) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	if err := s.requireJobOwner(ctx, app.JobID, callerID); err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.appRepo.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	_ = s.cache.Delete(ctx, jobCacheKey(app.JobID))
	return app, nil
}

// ListMine returns the caller's applications with job summaries.
func (s *applicationService) ListMine(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list own applications: %w", err)
	}
	if apps == nil {
		apps = []model.Application{}
	}
	return apps, nil
}

func (s *applicationService) requireJobOwner(ctx context.Context, jobID, callerID uuid.UUID) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != callerID {
		return apperrors.ErrNotJobOwner
	}
	return nil
}
