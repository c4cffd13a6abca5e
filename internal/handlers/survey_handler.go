package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careermatch/cv-matcher/internal/models"
	"careermatch/cv-matcher/internal/repositories"
)

type SurveyHandler struct {
	surveyRepo repositories.SurveyRepository
}

func NewSurveyHandler(surveyRepo repositories.SurveyRepository) *SurveyHandler {
	return &SurveyHandler{surveyRepo: surveyRepo}
}

// HandleSubmitSurvey handles POST /survey. Answers are Likert values 1-5
// keyed by trait question; omitted questions stay unanswered and score as 0
// during matching.
func (h *SurveyHandler) HandleSubmitSurvey(c *fiber.Ctx) error {
	var req models.SurveyRequest

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

	for key, value := range req.Answers {
		if value < 1 || value > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "answer for " + key + " must be between 1 and 5",
			})
		}
	}

	survey := models.SurveyResponse{
		ID:                   uuid.New(),
		CandidateID:          candidateID,
		Q1Teamwork:           req.Answers["q1_teamwork"],
		Q2ChallengingTasks:   req.Answers["q2_challenging_tasks"],
		Q3Leadership:         req.Answers["q3_leadership"],
		Q4Uncertainty:        req.Answers["q4_uncertainty"],
		Q5Stability:          req.Answers["q5_stability"],
		Q6TechnologyInterest: req.Answers["q6_technology_interest"],
		Q7ProblemSolving:     req.Answers["q7_problem_solving"],
		Q8Creativity:         req.Answers["q8_creativity"],
		Q9Communication:      req.Answers["q9_communication"],
		Q10DetailOrientation: req.Answers["q10_detail_orientation"],
		Q11CareerGrowth:      req.Answers["q11_career_growth"],
		Q12Recognition:       req.Answers["q12_recognition"],
		Q13Entrepreneurship:  req.Answers["q13_entrepreneurship"],
		Q14Learning:          req.Answers["q14_learning"],
		Q15Impact:            req.Answers["q15_impact"],
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := h.surveyRepo.Upsert(&survey); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save survey response",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Survey saved successfully",
	})
}
