package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/cache"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const (
	jobCacheTTL     = 5 * time.Minute
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// JobInput carries the fields an employer supplies for a new job posting.
type JobInput struct {
	Title        string
	Description  string
	Company      string
	Location     string
	Salary       string
	Requirements []string
}

// JobUpdates carries a partial update; nil fields keep their prior values.
type JobUpdates struct {
	Title        *string
	Description  *string
	Location     *string
	Salary       *string
	Requirements []string
}

// JobService exposes job posting operations.
type JobService interface {
	List(ctx context.Context, page, limit int) ([]model.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error)
	Create(ctx context.Context, employerID uuid.UUID, in JobInput) (*model.Job, error)
	Update(ctx context.Context, id, employerID uuid.UUID, updates JobUpdates) (*model.Job, error)
	Delete(ctx context.Context, id, employerID uuid.UUID) error
}

type jobService struct {
	jobRepo repository.JobRepository
	cache   *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(jobRepo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{jobRepo: jobRepo, cache: cache}
}

func jobCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id)
}

// List returns one page of jobs. Out-of-range pages yield an empty slice,
// never an error.
func (s *jobService) List(ctx context.Context, page, limit int) ([]model.Job, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	jobs, err := s.jobRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// GetByID returns a job with its employer and applications populated.
func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, jobCacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.jobRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, jobCacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Create persists a new job. The employer reference always comes from the
// authenticated identity, never from client input.
func (s *jobService) Create(ctx context.Context, employerID uuid.UUID, in JobInput) (*model.Job, error) {
	job := &model.Job{
		Title:        in.Title,
		Description:  in.Description,
		Company:      in.Company,
		Location:     in.Location,
		Salary:       in.Salary,
		Requirements: model.StringList(in.Requirements),
		EmployerID:   employerID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update merges the supplied fields onto the job. Only the owning employer
// may update; the employer reference itself is immutable.
func (s *jobService) Update(ctx context.Context, id, employerID uuid.UUID, updates JobUpdates) (*model.Job, error) {
	job, err := s.ownedJob(ctx, id, employerID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		job.Title = *updates.Title
	}
	if updates.Description != nil {
		job.Description = *updates.Description
	}
	if updates.Location != nil {
		job.Location = *updates.Location
	}
	if updates.Salary != nil {
		job.Salary = *updates.Salary
	}
	if updates.Requirements != nil {
		job.Requirements = model.StringList(updates.Requirements)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	_ = s.cache.Delete(ctx, jobCacheKey(id))
	return job, nil
}

// Delete removes a job owned by the caller, along with its applications
// and bookmarks.
func (s *jobService) Delete(ctx context.Context, id, employerID uuid.UUID) error {
	if _, err := s.ownedJob(ctx, id, employerID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	_ = s.cache.Delete(ctx, jobCacheKey(id))
	return nil
}

func (s *jobService) ownedJob(ctx context.Context, id, employerID uuid.UUID) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}
