package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careermatch/cv-matcher/internal/models"
	"careermatch/cv-matcher/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{jobRepo: jobRepo}
}

// HandleCreateJob handles POST /jobs. Required skills are a comma-separated
// list; preferred traits are free text mined by the trait inference engine
// during matching.
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.JobPostingRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	job := models.JobPosting{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		PreferredTraits: req.PreferredTraits,
		CompanyName:     req.CompanyName,
		Industry:        req.Industry,
		Location:        req.Location,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.jobRepo.Create(&job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job posting",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleListJobs handles GET /jobs.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job postings",
		})
	}

	return c.JSON(fiber.Map{
		"jobs": jobs,
	})
}

// HandleGetJob handles GET /jobs/:id.
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job posting not found",
		})
	}

	return c.JSON(job)
}
