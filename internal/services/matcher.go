package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careermatch/cv-matcher/internal/config"
	"careermatch/cv-matcher/internal/models"
	"careermatch/cv-matcher/internal/repositories"
)

// ErrPreconditionFailed marks a matching run invoked for a candidate without
// both a CV analysis and a survey response on record. Nothing is written for
// such a run.
var ErrPreconditionFailed = errors.New("candidate must have both a CV and a completed survey")

// MatchEngine computes match results for a candidate against job postings.
// It is pure: no I/O, deterministic for a fixed input and configuration.
type MatchEngine interface {
	EvaluateJob(candidateID uuid.UUID, job *models.JobPosting, cvSkills []string, answers map[string]int) models.MatchResult
	RunMatching(candidateID uuid.UUID, jobs []models.JobPosting, cv *models.CVAnalysis, survey *models.SurveyResponse) ([]models.MatchResult, error)
}

type matchEngine struct {
	skillMatcher SkillMatcherService
	skillWeight  float64
	traitWeight  float64
}

func NewMatchEngine(skillMatcher SkillMatcherService, cfg config.MatchingConfig) MatchEngine {
	return &matchEngine{
		skillMatcher: skillMatcher,
		skillWeight:  cfg.SkillWeight,
		traitWeight:  cfg.TraitWeight,
	}
}

// RunMatching scores one candidate against every given job posting. Both the
// CV analysis and the survey must be present; otherwise the whole run fails
// up front and no results are produced.
func (e *matchEngine) RunMatching(
	candidateID uuid.UUID,
	jobs []models.JobPosting,
	cv *models.CVAnalysis,
	survey *models.SurveyResponse,
) ([]models.MatchResult, error) {
	if cv == nil || survey == nil {
		return nil, ErrPreconditionFailed
	}

	cvSkills := SplitCommaList(cv.Skills)
	answers := survey.Answers()

	results := make([]models.MatchResult, 0, len(jobs))
	for i := range jobs {
		results = append(results, e.EvaluateJob(candidateID, &jobs[i], cvSkills, answers))
	}
	return results, nil
}

// EvaluateJob produces the match result for a single (candidate, job) pair:
// fuzzy skill overlap, trait alignment from the posting's preferred-traits
// text, the weighted composite and a human-readable explanation.
func (e *matchEngine) EvaluateJob(
	candidateID uuid.UUID,
	job *models.JobPosting,
	cvSkills []string,
	answers map[string]int,
) models.MatchResult {
	jobSkills := SplitCommaList(job.RequiredSkills)

	skillScore, matchedSkills := e.skillMatcher.Match(cvSkills, jobSkills)

	matchedTraits := InferTraits(job.PreferredTraits)
	traitScore := TraitScore(answers, matchedTraits)

	finalScore := round2(e.skillWeight*skillScore + e.traitWeight*traitScore)

	var explanation strings.Builder
	if len(matchedSkills) > 0 {
		explanation.WriteString("Skills matched: " + strings.Join(matchedSkills, ", ") + ". ")
	}
	if len(matchedTraits) > 0 {
		explanation.WriteString("Traits matched: " + strings.Join(matchedTraits, ", ") + ".")
	}
	if explanation.Len() == 0 {
		explanation.WriteString("No strong matches found, but this job was evaluated.")
	}

	return models.MatchResult{
		CandidateID:   candidateID,
		JobID:         job.ID,
		SkillScore:    skillScore,
		TraitScore:    traitScore,
		MatchScore:    finalScore,
		MatchedSkills: strings.Join(matchedSkills, ", "),
		MatchedTraits: strings.Join(matchedTraits, ", "),
		Explanation:   explanation.String(),
		MatchedAt:     time.Now(),
	}
}

// MatcherService executes persisted match runs: it loads the candidate's
// records, checks preconditions, runs the engine over all job postings and
// upserts one result per pair.
type MatcherService interface {
	ProcessRun(ctx context.Context, runID uuid.UUID) error
}

type matcherService struct {
	runRepo    repositories.MatchRunRepository
	cvRepo     repositories.CVAnalysisRepository
	surveyRepo repositories.SurveyRepository
	jobRepo    repositories.JobRepository
	matchRepo  repositories.MatchResultRepository
	engine     MatchEngine
}

func NewMatcherService(
	runRepo repositories.MatchRunRepository,
	cvRepo repositories.CVAnalysisRepository,
	surveyRepo repositories.SurveyRepository,
	jobRepo repositories.JobRepository,
	matchRepo repositories.MatchResultRepository,
	engine MatchEngine,
) MatcherService {
	return &matcherService{
		runRepo:    runRepo,
		cvRepo:     cvRepo,
		surveyRepo: surveyRepo,
		jobRepo:    jobRepo,
		matchRepo:  matchRepo,
		engine:     engine,
	}
}

func (m *matcherService) ProcessRun(ctx context.Context, runID uuid.UUID) error {
	if err := m.runRepo.UpdateStatus(runID, models.RunProcessing); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}

	run, err := m.runRepo.FindByID(runID)
	if err != nil {
		m.runRepo.UpdateError(runID, err.Error())
		return fmt.Errorf("failed to load match run: %w", err)
	}

	log.Printf("🔄 Starting matching run %s for candidate %s\n", runID, run.CandidateID)

	// Preconditions are checked once here; the run then works against this
	// snapshot. Concurrent deletion of the records mid-run is last-writer-wins
	// on the result rows.
	cv, err := m.cvRepo.FindByCandidate(run.CandidateID)
	if err != nil {
		return m.failPrecondition(runID, err)
	}

	survey, err := m.surveyRepo.FindByCandidate(run.CandidateID)
	if err != nil {
		return m.failPrecondition(runID, err)
	}

	jobs, err := m.jobRepo.FindAll()
	if err != nil {
		m.runRepo.UpdateError(runID, err.Error())
		return fmt.Errorf("failed to load job postings: %w", err)
	}

	results, err := m.engine.RunMatching(run.CandidateID, jobs, cv, survey)
	if err != nil {
		m.runRepo.UpdateError(runID, err.Error())
		return err
	}

	for i := range results {
		if err := m.matchRepo.Upsert(&results[i]); err != nil {
			m.runRepo.UpdateError(runID, err.Error())
			return fmt.Errorf("failed to save match result: %w", err)
		}
	}

	if err := m.runRepo.MarkCompleted(runID, len(results)); err != nil {
		return fmt.Errorf("failed to complete match run: %w", err)
	}

	log.Printf("✅ Matching run %s completed: %d jobs scored\n", runID, len(results))
	return nil
}

func (m *matcherService) failPrecondition(runID uuid.UUID, cause error) error {
	if errors.Is(cause, gorm.ErrRecordNotFound) {
		m.runRepo.UpdateError(runID, ErrPreconditionFailed.Error())
		return fmt.Errorf("%w: %v", ErrPreconditionFailed, cause)
	}

	m.runRepo.UpdateError(runID, cause.Error())
	return fmt.Errorf("failed to load candidate records: %w", cause)
}
