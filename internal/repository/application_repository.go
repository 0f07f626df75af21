package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// jobSummary limits the job relation to public listing fields.
func jobSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "company", "location", "salary")
}

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	Save(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) Save(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByJob returns all applications for a job with applicant identities.
func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant", applicantSummary).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByApplicant returns all applications by a user with job summaries.
func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Job", jobSummary).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
