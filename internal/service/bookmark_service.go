package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// BookmarkService toggles membership of a user in a job's saved set.
type BookmarkService interface {
	Save(ctx context.Context, userID, jobID uuid.UUID) error
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]model.Job, error)
}

type bookmarkService struct {
	jobRepo repository.JobRepository
}

// NewBookmarkService builds a BookmarkService.
func NewBookmarkService(jobRepo repository.JobRepository) BookmarkService {
	return &bookmarkService{jobRepo: jobRepo}
}

// Save bookmarks a job for the user. The insert is a single statement
// against the saved_jobs table, so two overlapping saves cannot both win:
// the second hits the composite key and maps to a duplicate error.
func (s *bookmarkService) Save(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := s.requireJob(ctx, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.AddBookmark(ctx, jobID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrJobAlreadySaved
		}
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

// Unsave removes a bookmark. Deleting a row that is not there reports
// "not bookmarked" rather than silently succeeding.
func (s *bookmarkService) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := s.requireJob(ctx, jobID); err != nil {
		return err
	}

	removed, err := s.jobRepo.RemoveBookmark(ctx, jobID, userID)
	if err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}
	if !removed {
		return apperrors.ErrJobNotSaved
	}
	return nil
}

// ListSaved returns the jobs the user has bookmarked.
func (s *bookmarkService) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListBookmarked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

func (s *bookmarkService) requireJob(ctx context.Context, jobID uuid.UUID) error {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("find job: %w", err)
	}
	return nil
}
