package models

import (
	"time"

	"github.com/google/uuid"
)

// CVAnalysis holds the structured fields extracted from a candidate's CV.
// Fields that could not be found carry the "Not Found" sentinel rather than
// an empty value, so the record round-trips to display unchanged.
type CVAnalysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"candidate_id"`
	Email          string    `gorm:"type:text" json:"email"`
	Phone          string    `gorm:"type:text" json:"phone"`
	Skills         string    `gorm:"type:text" json:"skills"`
	Education      string    `gorm:"type:text" json:"education"`
	Certifications string    `gorm:"type:text" json:"certifications"`
	Languages      string    `gorm:"type:text" json:"languages"`
	WorkExperience string    `gorm:"type:text" json:"work_experience"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (a *CVAnalysis) TableName() string {
	return "cv_analyses"
}

// SurveyResponse stores a candidate's self-reported Likert answers (1-5),
// one column per trait question. A zero value means unanswered.
type SurveyResponse struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"candidate_id"`
	Q1Teamwork           int       `gorm:"column:q1_teamwork" json:"q1_teamwork"`
	Q2ChallengingTasks   int       `gorm:"column:q2_challenging_tasks" json:"q2_challenging_tasks"`
	Q3Leadership         int       `gorm:"column:q3_leadership" json:"q3_leadership"`
	Q4Uncertainty        int       `gorm:"column:q4_uncertainty" json:"q4_uncertainty"`
	Q5Stability          int       `gorm:"column:q5_stability" json:"q5_stability"`
	Q6TechnologyInterest int       `gorm:"column:q6_technology_interest" json:"q6_technology_interest"`
	Q7ProblemSolving     int       `gorm:"column:q7_problem_solving" json:"q7_problem_solving"`
	Q8Creativity         int       `gorm:"column:q8_creativity" json:"q8_creativity"`
	Q9Communication      int       `gorm:"column:q9_communication" json:"q9_communication"`
	Q10DetailOrientation int       `gorm:"column:q10_detail_orientation" json:"q10_detail_orientation"`
	Q11CareerGrowth      int       `gorm:"column:q11_career_growth" json:"q11_career_growth"`
	Q12Recognition       int       `gorm:"column:q12_recognition" json:"q12_recognition"`
	Q13Entrepreneurship  int       `gorm:"column:q13_entrepreneurship" json:"q13_entrepreneurship"`
	Q14Learning          int       `gorm:"column:q14_learning" json:"q14_learning"`
	Q15Impact            int       `gorm:"column:q15_impact" json:"q15_impact"`
	CreatedAt            time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt            time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (s *SurveyResponse) TableName() string {
	return "survey_responses"
}

// Answers flattens the survey columns into the trait-key map used by the
// trait matcher. Unanswered questions stay at 0.
func (s *SurveyResponse) Answers() map[string]int {
	return map[string]int{
		"q1_teamwork":            s.Q1Teamwork,
		"q2_challenging_tasks":   s.Q2ChallengingTasks,
		"q3_leadership":          s.Q3Leadership,
		"q4_uncertainty":         s.Q4Uncertainty,
		"q5_stability":           s.Q5Stability,
		"q6_technology_interest": s.Q6TechnologyInterest,
		"q7_problem_solving":     s.Q7ProblemSolving,
		"q8_creativity":          s.Q8Creativity,
		"q9_communication":       s.Q9Communication,
		"q10_detail_orientation": s.Q10DetailOrientation,
		"q11_career_growth":      s.Q11CareerGrowth,
		"q12_recognition":        s.Q12Recognition,
		"q13_entrepreneurship":   s.Q13Entrepreneurship,
		"q14_learning":           s.Q14Learning,
		"q15_impact":             s.Q15Impact,
	}
}
