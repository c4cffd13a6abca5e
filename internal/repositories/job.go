package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careermatch/cv-matcher/internal/models"
)

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id uuid.UUID) (*models.JobPosting, error)
	FindAll() ([]models.JobPosting, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.JobPosting) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job posting not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find job posting: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) FindAll() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := r.db.Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return jobs, nil
}
