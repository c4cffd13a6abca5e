package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careermatch/cv-matcher/internal/models"
)

type CVAnalysisRepository interface {
	Upsert(analysis *models.CVAnalysis) error
	FindByCandidate(candidateID uuid.UUID) (*models.CVAnalysis, error)
	DeleteByCandidate(candidateID uuid.UUID) error
}

type cvAnalysisRepository struct {
	db *gorm.DB
}

func NewCVAnalysisRepository(db *gorm.DB) CVAnalysisRepository {
	return &cvAnalysisRepository{db: db}
}

// Upsert replaces the candidate's analysis wholesale. One analysis row per
// candidate; a re-uploaded CV supersedes the previous extraction.
func (r *cvAnalysisRepository) Upsert(analysis *models.CVAnalysis) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "phone", "skills", "education",
			"certifications", "languages", "work_experience", "updated_at",
		}),
	}).Create(analysis).Error

	if err != nil {
		return fmt.Errorf("failed to upsert CV analysis: %w", err)
	}
	return nil
}

func (r *cvAnalysisRepository) FindByCandidate(candidateID uuid.UUID) (*models.CVAnalysis, error) {
	var analysis models.CVAnalysis
	if err := r.db.Where("candidate_id = ?", candidateID).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("CV analysis not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find CV analysis: %w", err)
	}
	return &analysis, nil
}

func (r *cvAnalysisRepository) DeleteByCandidate(candidateID uuid.UUID) error {
	if err := r.db.Where("candidate_id = ?", candidateID).Delete(&models.CVAnalysis{}).Error; err != nil {
		return fmt.Errorf("failed to delete CV analysis: %w", err)
	}
	return nil
}

type SurveyRepository interface {
	Upsert(survey *models.SurveyResponse) error
	FindByCandidate(candidateID uuid.UUID) (*models.SurveyResponse, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

// Upsert replaces the candidate's full answer vector.
func (r *surveyRepository) Upsert(survey *models.SurveyResponse) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"q1_teamwork", "q2_challenging_tasks", "q3_leadership", "q4_uncertainty",
			"q5_stability", "q6_technology_interest", "q7_problem_solving", "q8_creativity",
			"q9_communication", "q10_detail_orientation", "q11_career_growth", "q12_recognition",
			"q13_entrepreneurship", "q14_learning", "q15_impact", "updated_at",
		}),
	}).Create(survey).Error

	if err != nil {
		return fmt.Errorf("failed to upsert survey response: %w", err)
	}
	return nil
}

func (r *surveyRepository) FindByCandidate(candidateID uuid.UUID) (*models.SurveyResponse, error) {
	var survey models.SurveyResponse
	if err := r.db.Where("candidate_id = ?", candidateID).First(&survey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("survey response not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find survey response: %w", err)
	}
	return &survey, nil
}
