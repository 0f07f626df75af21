package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can register with.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleEmployer
}

// User represents a registered account, either a job seeker or an employer.
// Company is required for employers only.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:20;not null;index"`
	Company      string    `json:"company,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
