package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Job represents a job posting owned by a single employer.
type Job struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Company      string     `json:"company" gorm:"size:255;not null;index"`
	Location     string     `json:"location" gorm:"size:255"`
	Salary       string     `json:"salary" gorm:"size:100"`
	Requirements StringList `json:"requirements" gorm:"type:json"`
	EmployerID   uuid.UUID  `json:"employer_id" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Employer     *User         `json:"employer,omitempty" gorm:"foreignKey:EmployerID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// SavedJob is one bookmark: a row per (job, user) pair. The composite
// primary key makes save/unsave single atomic INSERT/DELETE statements,
// so concurrent toggles on the same job cannot lose writes.
type SavedJob struct {
	JobID     uuid.UUID `json:"job_id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
