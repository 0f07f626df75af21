package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// employerSummary limits the employer relation to public fields.
func employerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "company")
}

// applicantSummary limits the applicant relation to public fields.
func applicantSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email", "role", "company")
}

// JobRepository defines job and bookmark persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, offset, limit int) ([]model.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error)
	// Bookmark operations are single-statement writes against the
	// saved_jobs table; the composite key enforces set semantics.
	AddBookmark(ctx context.Context, jobID, userID uuid.UUID) error
	RemoveBookmark(ctx context.Context, jobID, userID uuid.UUID) (removed bool, err error)
	ListBookmarked(ctx context.Context, userID uuid.UUID) ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes the job together with its applications and bookmarks.
func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&model.SavedJob{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Job{}).Error
	})
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByIDWithRelations loads the job with its employer and applications
// (applicant identities included).
func (r *jobRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).
		Preload("Employer", employerSummary).
		Preload("Applications").
		Preload("Applications.Applicant", applicantSummary).
		Where("id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, offset, limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Employer", employerSummary).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Employer", employerSummary).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) AddBookmark(ctx context.Context, jobID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&model.SavedJob{JobID: jobID, UserID: userID}).Error
}

func (r *jobRepository) RemoveBookmark(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Delete(&model.SavedJob{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *jobRepository) ListBookmarked(ctx context.Context, userID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Employer", employerSummary).
		Joins("JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
