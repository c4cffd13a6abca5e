package models

type UploadResponse struct {
	ID           string      `json:"id"`
	Filename     string      `json:"filename"`
	OriginalName string      `json:"original_name"`
	Analysis     *CVAnalysis `json:"analysis,omitempty"`
}

type SurveyRequest struct {
	CandidateID string         `json:"candidate_id"`
	Answers     map[string]int `json:"answers"`
}

type JobPostingRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	RequiredSkills  string `json:"required_skills"`
	PreferredTraits string `json:"preferred_traits"`
	CompanyName     string `json:"company_name"`
	Industry        string `json:"industry"`
	Location        string `json:"location"`
}

type MatchRequest struct {
	CandidateID string `json:"candidate_id"`
}

type MatchRunResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MatchRunStatusResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	JobsMatched  *int    `json:"jobs_matched,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type MatchResultResponse struct {
	JobID         string   `json:"job_id"`
	JobTitle      string   `json:"job_title"`
	CompanyName   string   `json:"company_name,omitempty"`
	SkillScore    float64  `json:"skill_score"`
	TraitScore    float64  `json:"trait_score"`
	MatchScore    float64  `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MatchedTraits []string `json:"matched_traits"`
	Explanation   string   `json:"explanation"`
}
