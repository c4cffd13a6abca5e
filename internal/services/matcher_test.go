package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"careermatch/cv-matcher/internal/config"
	"careermatch/cv-matcher/internal/models"
)

func testMatchingConfig() config.MatchingConfig {
	return config.MatchingConfig{
		SkillThreshold: 45,
		SkillWeight:    0.75,
		TraitWeight:    0.25,
	}
}

func newTestEngine() MatchEngine {
	cfg := testMatchingConfig()
	return NewMatchEngine(NewSkillMatcherService(cfg.SkillThreshold), cfg)
}

func TestMatchEngineCompositeScore(t *testing.T) {
	engine := newTestEngine()
	candidateID := uuid.New()

	cv := &models.CVAnalysis{CandidateID: candidateID, Skills: "Python, SQL"}
	survey := &models.SurveyResponse{
		CandidateID:          candidateID,
		Q1Teamwork:           5,
		Q10DetailOrientation: 3,
	}
	jobs := []models.JobPosting{{
		ID:              uuid.New(),
		Title:           "Backend Developer",
		RequiredSkills:  "python, SQL, Django",
		PreferredTraits: "We need someone who enjoys teamwork and is detail-oriented.",
	}}

	results, err := engine.RunMatching(candidateID, jobs, cv, survey)
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.InDelta(t, 66.67, result.SkillScore, 1e-9)
	assert.InDelta(t, 80.0, result.TraitScore, 1e-9)
	assert.InDelta(t, 70.0, result.MatchScore, 1e-9)
	assert.Equal(t, "Python, SQL", result.MatchedSkills)
	assert.Equal(t, "q1_teamwork, q10_detail_orientation", result.MatchedTraits)
	assert.Equal(t,
		"Skills matched: Python, SQL. Traits matched: q1_teamwork, q10_detail_orientation.",
		result.Explanation)
}

func TestMatchEngineFallbackExplanation(t *testing.T) {
	engine := newTestEngine()
	candidateID := uuid.New()

	cv := &models.CVAnalysis{CandidateID: candidateID, Skills: "Python"}
	survey := &models.SurveyResponse{CandidateID: candidateID}
	jobs := []models.JobPosting{{
		ID:              uuid.New(),
		Title:           "Carpenter",
		RequiredSkills:  "woodworking",
		PreferredTraits: "We sell furniture.",
	}}

	results, err := engine.RunMatching(candidateID, jobs, cv, survey)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "No strong matches found, but this job was evaluated.", results[0].Explanation)
	assert.Equal(t, 0.0, results[0].MatchScore)
}

func TestMatchEngineSentinelSkillsScoreZero(t *testing.T) {
	engine := newTestEngine()
	candidateID := uuid.New()

	cv := &models.CVAnalysis{CandidateID: candidateID, Skills: NotFound}
	survey := &models.SurveyResponse{CandidateID: candidateID}
	jobs := []models.JobPosting{{ID: uuid.New(), RequiredSkills: "Python, SQL"}}

	results, err := engine.RunMatching(candidateID, jobs, cv, survey)
	require.NoError(t, err)
	assert.Equal(t, 0.0, results[0].SkillScore)
	assert.Empty(t, results[0].MatchedSkills)
}

func TestMatchEngineMissingRecords(t *testing.T) {
	engine := newTestEngine()
	candidateID := uuid.New()

	_, err := engine.RunMatching(candidateID, nil, nil, &models.SurveyResponse{})
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	_, err = engine.RunMatching(candidateID, nil, &models.CVAnalysis{}, nil)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

// Stub repositories for exercising the run orchestration without a database.

type stubRunRepo struct {
	runs      map[uuid.UUID]*models.MatchRun
	errors    map[uuid.UUID]string
	completed map[uuid.UUID]int
}

func newStubRunRepo() *stubRunRepo {
	return &stubRunRepo{
		runs:      make(map[uuid.UUID]*models.MatchRun),
		errors:    make(map[uuid.UUID]string),
		completed: make(map[uuid.UUID]int),
	}
}

func (s *stubRunRepo) Create(run *models.MatchRun) error {
	s.runs[run.ID] = run
	return nil
}

func (s *stubRunRepo) FindByID(id uuid.UUID) (*models.MatchRun, error) {
	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("match run not found: %w", gorm.ErrRecordNotFound)
	}
	return run, nil
}

func (s *stubRunRepo) UpdateStatus(id uuid.UUID, status models.MatchRunStatus) error {
	if run, ok := s.runs[id]; ok {
		run.Status = status
	}
	return nil
}

func (s *stubRunRepo) MarkCompleted(id uuid.UUID, jobsMatched int) error {
	s.completed[id] = jobsMatched
	if run, ok := s.runs[id]; ok {
		run.Status = models.RunCompleted
	}
	return nil
}

func (s *stubRunRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	s.errors[id] = errorMsg
	if run, ok := s.runs[id]; ok {
		run.Status = models.RunFailed
	}
	return nil
}

func (s *stubRunRepo) FindPendingRuns(limit int) ([]models.MatchRun, error) {
	return nil, nil
}

type stubCVRepo struct {
	analyses map[uuid.UUID]*models.CVAnalysis
}

func (s *stubCVRepo) Upsert(analysis *models.CVAnalysis) error {
	s.analyses[analysis.CandidateID] = analysis
	return nil
}

func (s *stubCVRepo) FindByCandidate(candidateID uuid.UUID) (*models.CVAnalysis, error) {
	analysis, ok := s.analyses[candidateID]
	if !ok {
		return nil, fmt.Errorf("CV analysis not found: %w", gorm.ErrRecordNotFound)
	}
	return analysis, nil
}

func (s *stubCVRepo) DeleteByCandidate(candidateID uuid.UUID) error {
	delete(s.analyses, candidateID)
	return nil
}

type stubSurveyRepo struct {
	surveys map[uuid.UUID]*models.SurveyResponse
}

func (s *stubSurveyRepo) Upsert(survey *models.SurveyResponse) error {
	s.surveys[survey.CandidateID] = survey
	return nil
}

func (s *stubSurveyRepo) FindByCandidate(candidateID uuid.UUID) (*models.SurveyResponse, error) {
	survey, ok := s.surveys[candidateID]
	if !ok {
		return nil, fmt.Errorf("survey response not found: %w", gorm.ErrRecordNotFound)
	}
	return survey, nil
}

type stubJobRepo struct {
	jobs []models.JobPosting
}

func (s *stubJobRepo) Create(job *models.JobPosting) error {
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *stubJobRepo) FindByID(id uuid.UUID) (*models.JobPosting, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return &s.jobs[i], nil
		}
	}
	return nil, fmt.Errorf("job posting not found: %w", gorm.ErrRecordNotFound)
}

func (s *stubJobRepo) FindAll() ([]models.JobPosting, error) {
	return s.jobs, nil
}

type matchPair struct {
	candidateID uuid.UUID
	jobID       uuid.UUID
}

type stubMatchRepo struct {
	results map[matchPair]models.MatchResult
	upserts int
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{results: make(map[matchPair]models.MatchResult)}
}

func (s *stubMatchRepo) Upsert(result *models.MatchResult) error {
	s.upserts++
	s.results[matchPair{result.CandidateID, result.JobID}] = *result
	return nil
}

func (s *stubMatchRepo) FindByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error) {
	var results []models.MatchResult
	for pair, result := range s.results {
		if pair.candidateID == candidateID {
			results = append(results, result)
		}
	}
	return results, nil
}

type matcherFixture struct {
	service    MatcherService
	runRepo    *stubRunRepo
	cvRepo     *stubCVRepo
	surveyRepo *stubSurveyRepo
	jobRepo    *stubJobRepo
	matchRepo  *stubMatchRepo
}

func newMatcherFixture() *matcherFixture {
	f := &matcherFixture{
		runRepo:    newStubRunRepo(),
		cvRepo:     &stubCVRepo{analyses: make(map[uuid.UUID]*models.CVAnalysis)},
		surveyRepo: &stubSurveyRepo{surveys: make(map[uuid.UUID]*models.SurveyResponse)},
		jobRepo:    &stubJobRepo{},
		matchRepo:  newStubMatchRepo(),
	}
	f.service = NewMatcherService(
		f.runRepo, f.cvRepo, f.surveyRepo, f.jobRepo, f.matchRepo, newTestEngine(),
	)
	return f
}

func (f *matcherFixture) enqueueRun(candidateID uuid.UUID) uuid.UUID {
	run := &models.MatchRun{ID: uuid.New(), CandidateID: candidateID, Status: models.RunQueued}
	f.runRepo.Create(run)
	return run.ID
}

func TestProcessRunWritesOneResultPerJob(t *testing.T) {
	f := newMatcherFixture()
	candidateID := uuid.New()

	f.cvRepo.Upsert(&models.CVAnalysis{CandidateID: candidateID, Skills: "Python, SQL"})
	f.surveyRepo.Upsert(&models.SurveyResponse{CandidateID: candidateID, Q1Teamwork: 5})
	f.jobRepo.Create(&models.JobPosting{ID: uuid.New(), RequiredSkills: "Python"})
	f.jobRepo.Create(&models.JobPosting{ID: uuid.New(), RequiredSkills: "Java", PreferredTraits: "teamwork"})

	runID := f.enqueueRun(candidateID)
	require.NoError(t, f.service.ProcessRun(context.Background(), runID))

	assert.Len(t, f.matchRepo.results, 2)
	assert.Equal(t, 2, f.runRepo.completed[runID])
	assert.Equal(t, models.RunCompleted, f.runRepo.runs[runID].Status)
}

func TestProcessRunUpsertIsIdempotent(t *testing.T) {
	f := newMatcherFixture()
	candidateID := uuid.New()

	f.cvRepo.Upsert(&models.CVAnalysis{CandidateID: candidateID, Skills: "Go"})
	f.surveyRepo.Upsert(&models.SurveyResponse{CandidateID: candidateID})
	f.jobRepo.Create(&models.JobPosting{ID: uuid.New(), RequiredSkills: "Go"})

	first := f.enqueueRun(candidateID)
	require.NoError(t, f.service.ProcessRun(context.Background(), first))

	var initial models.MatchResult
	for _, result := range f.matchRepo.results {
		initial = result
	}

	second := f.enqueueRun(candidateID)
	require.NoError(t, f.service.ProcessRun(context.Background(), second))

	// Re-running replaces the pair's row, it never duplicates it.
	require.Len(t, f.matchRepo.results, 1)
	assert.Equal(t, 2, f.matchRepo.upserts)

	for _, result := range f.matchRepo.results {
		assert.Equal(t, initial.MatchScore, result.MatchScore)
		assert.Equal(t, initial.MatchedSkills, result.MatchedSkills)
		assert.Equal(t, initial.Explanation, result.Explanation)
	}
}

func TestProcessRunMissingCVFailsPrecondition(t *testing.T) {
	f := newMatcherFixture()
	candidateID := uuid.New()

	f.surveyRepo.Upsert(&models.SurveyResponse{CandidateID: candidateID})
	f.jobRepo.Create(&models.JobPosting{ID: uuid.New(), RequiredSkills: "Go"})

	runID := f.enqueueRun(candidateID)
	err := f.service.ProcessRun(context.Background(), runID)

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Empty(t, f.matchRepo.results, "no partial results may be written")
	assert.Equal(t, models.RunFailed, f.runRepo.runs[runID].Status)
	assert.Equal(t, ErrPreconditionFailed.Error(), f.runRepo.errors[runID])
}

func TestProcessRunMissingSurveyFailsPrecondition(t *testing.T) {
	f := newMatcherFixture()
	candidateID := uuid.New()

	f.cvRepo.Upsert(&models.CVAnalysis{CandidateID: candidateID, Skills: "Go"})

	runID := f.enqueueRun(candidateID)
	err := f.service.ProcessRun(context.Background(), runID)

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Empty(t, f.matchRepo.results)
}
