package models

import (
	"time"

	"github.com/google/uuid"
)

type JobPosting struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	RequiredSkills  string    `gorm:"type:text" json:"required_skills"`
	PreferredTraits string    `gorm:"type:text" json:"preferred_traits"`
	CompanyName     string    `gorm:"type:text" json:"company_name"`
	Industry        string    `gorm:"type:text" json:"industry"`
	Location        string    `gorm:"type:text" json:"location"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (j *JobPosting) TableName() string {
	return "job_postings"
}
