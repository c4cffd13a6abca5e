package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careermatch/cv-matcher/internal/models"
)

type MatchResultRepository interface {
	Upsert(result *models.MatchResult) error
	FindByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error)
}

type matchResultRepository struct {
	db *gorm.DB
}

func NewMatchResultRepository(db *gorm.DB) MatchResultRepository {
	return &matchResultRepository{db: db}
}

// Upsert writes the result for one (candidate, job) pair, fully replacing
// any previous row for that pair. Last writer wins under concurrent runs.
func (r *matchResultRepository) Upsert(result *models.MatchResult) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"skill_score", "trait_score", "match_score",
			"matched_skills", "matched_traits", "explanation", "matched_at",
		}),
	}).Create(result).Error

	if err != nil {
		return fmt.Errorf("failed to upsert match result: %w", err)
	}
	return nil
}

func (r *matchResultRepository) FindByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error) {
	var results []models.MatchResult
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("match_score DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	return results, nil
}

type MatchRunRepository interface {
	Create(run *models.MatchRun) error
	FindByID(id uuid.UUID) (*models.MatchRun, error)
	UpdateStatus(id uuid.UUID, status models.MatchRunStatus) error
	MarkCompleted(id uuid.UUID, jobsMatched int) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingRuns(limit int) ([]models.MatchRun, error)
}

type matchRunRepository struct {
	db *gorm.DB
}

func NewMatchRunRepository(db *gorm.DB) MatchRunRepository {
	return &matchRunRepository{db: db}
}

func (r *matchRunRepository) Create(run *models.MatchRun) error {
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create match run: %w", err)
	}
	return nil
}

func (r *matchRunRepository) FindByID(id uuid.UUID) (*models.MatchRun, error) {
	var run models.MatchRun
	if err := r.db.Where("id = ?", id).First(&run).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("match run not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find match run: %w", err)
	}
	return &run, nil
}

func (r *matchRunRepository) UpdateStatus(id uuid.UUID, status models.MatchRunStatus) error {
	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update run status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) MarkCompleted(id uuid.UUID, jobsMatched int) error {
	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.RunCompleted,
			"jobs_matched": jobsMatched,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete match run: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.MatchRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.RunFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update run error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match run not found")
	}

	return nil
}

func (r *matchRunRepository) FindPendingRuns(limit int) ([]models.MatchRun, error) {
	var runs []models.MatchRun
	err := r.db.
		Where("status = ?", models.RunQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&runs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending runs: %w", err)
	}

	return runs, nil
}
