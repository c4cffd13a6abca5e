package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchResult is the scored outcome for one (candidate, job) pair. A
// matching run fully replaces the previous row for the pair, never patches
// individual fields.
type MatchResult struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"candidate_id"`
	JobID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"job_id"`
	SkillScore    float64   `gorm:"type:decimal(5,2)" json:"skill_score"`
	TraitScore    float64   `gorm:"type:decimal(5,2)" json:"trait_score"`
	MatchScore    float64   `gorm:"type:decimal(5,2)" json:"match_score"`
	MatchedSkills string    `gorm:"type:text" json:"matched_skills"`
	MatchedTraits string    `gorm:"type:text" json:"matched_traits"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	MatchedAt     time.Time `gorm:"type:timestamp;default:now()" json:"matched_at"`
}

func (m *MatchResult) TableName() string {
	return "match_results"
}

type MatchRunStatus string

const (
	RunQueued     MatchRunStatus = "queued"
	RunProcessing MatchRunStatus = "processing"
	RunCompleted  MatchRunStatus = "completed"
	RunFailed     MatchRunStatus = "failed"
)

// MatchRun tracks one asynchronous matching pass of a candidate against all
// job postings.
type MatchRun struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Status       MatchRunStatus `gorm:"not null;default:'queued'" json:"status"`
	JobsMatched  *int           `gorm:"type:int" json:"jobs_matched,omitempty"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MatchRun) TableName() string {
	return "match_runs"
}
