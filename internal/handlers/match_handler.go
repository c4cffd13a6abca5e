package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careermatch/cv-matcher/internal/models"
	"careermatch/cv-matcher/internal/repositories"
	"careermatch/cv-matcher/internal/services"
)

type MatchHandler struct {
	runRepo   repositories.MatchRunRepository
	matchRepo repositories.MatchResultRepository
	jobRepo   repositories.JobRepository
	worker    services.Worker
}

func NewMatchHandler(
	runRepo repositories.MatchRunRepository,
	matchRepo repositories.MatchResultRepository,
	jobRepo repositories.JobRepository,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		runRepo:   runRepo,
		matchRepo: matchRepo,
		jobRepo:   jobRepo,
		worker:    worker,
	}
}

// HandleStartMatching handles POST /match: creates a match run for the
// candidate and enqueues it. The run ID is returned immediately; results
// become available once the worker finishes.
func (h *MatchHandler) HandleStartMatching(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate_id format",
		})
	}

	run := &models.MatchRun{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Status:      models.RunQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.runRepo.Create(run); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create match run",
		})
	}

	h.worker.EnqueueRun(run.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.MatchRunResponse{
		ID:     run.ID.String(),
		Status: string(models.RunQueued),
	})
}

// HandleGetRunStatus handles GET /match/:id.
func (h *MatchHandler) HandleGetRunStatus(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid match run ID format",
		})
	}

	run, err := h.runRepo.FindByID(runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Match run not found",
		})
	}

	return c.JSON(models.MatchRunStatusResponse{
		ID:           run.ID.String(),
		Status:       string(run.Status),
		JobsMatched:  run.JobsMatched,
		ErrorMessage: run.ErrorMessage,
	})
}

// HandleListMatches handles GET /candidates/:id/matches: the candidate's
// match results ordered by composite score, with trait keys rendered as
// display labels in the explanation.
func (h *MatchHandler) HandleListMatches(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	results, err := h.matchRepo.FindByCandidate(candidateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list match results",
		})
	}

	responses := make([]models.MatchResultResponse, 0, len(results))
	for _, result := range results {
		resp := models.MatchResultResponse{
			JobID:         result.JobID.String(),
			SkillScore:    result.SkillScore,
			TraitScore:    result.TraitScore,
			MatchScore:    result.MatchScore,
			MatchedSkills: services.SplitCommaList(result.MatchedSkills),
			MatchedTraits: services.SplitCommaList(result.MatchedTraits),
			Explanation:   services.HumanizeTraits(result.Explanation),
		}

		if job, err := h.jobRepo.FindByID(result.JobID); err == nil {
			resp.JobTitle = job.Title
			resp.CompanyName = job.CompanyName
		}

		responses = append(responses, resp)
	}

	return c.JSON(fiber.Map{
		"matches": responses,
	})
}
