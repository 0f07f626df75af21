package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. There is no enforced transition graph; any status
// may follow any other.
const (
	StatusPending   = "pending"
	StatusInterview = "interview"
	StatusRejected  = "rejected"
	StatusHired     = "hired"
	StatusAccepted  = "accepted"
)

// ValidStatus reports whether s is one of the recognized statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInterview, StatusRejected, StatusHired, StatusAccepted:
		return true
	}
	return false
}

// Application links a job seeker to a job posting. The composite unique
// index keeps one application per (job, applicant) pair.
type Application struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID `json:"job_id" gorm:"type:char(36);not null;uniqueIndex:idx_job_applicant"`
	ApplicantID uuid.UUID `json:"applicant_id" gorm:"type:char(36);not null;uniqueIndex:idx_job_applicant"`
	CoverLetter string    `json:"cover_letter" gorm:"type:text"`
	ResumeLink  string    `json:"resume_link" gorm:"size:512"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Job       *Job  `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Applicant *User `json:"applicant,omitempty" gorm:"foreignKey:ApplicantID"`
}

// BeforeCreate sets UUID and default status before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
