package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careermatch/cv-matcher/internal/models"
	"careermatch/cv-matcher/internal/repositories"
	"careermatch/cv-matcher/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	cvRepo         repositories.CVAnalysisRepository
	storageService services.StorageService
	extractor      services.CVExtractorService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	cvRepo repositories.CVAnalysisRepository,
	storageService services.StorageService,
	extractor services.CVExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		cvRepo:         cvRepo,
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload: saves the candidate's CV, records the
// document and immediately extracts the structured analysis from it. An
// unreadable PDF still produces an (all-sentinel) analysis.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.FormValue("candidate_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate_id format",
		})
	}

	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveCV(cvFile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		CandidateID:      candidateID,
		Filename:         filename,
		OriginalFileName: cvFile.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV document record: %v", err),
		})
	}

	extracted := h.extractor.ParseCV(filePath)

	analysis := models.CVAnalysis{
		ID:             uuid.New(),
		CandidateID:    candidateID,
		Email:          extracted.Email,
		Phone:          extracted.Phone,
		Skills:         extracted.Skills,
		Education:      extracted.Education,
		Certifications: extracted.Certifications,
		Languages:      extracted.Languages,
		WorkExperience: extracted.JoinedExperience(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.cvRepo.Upsert(&analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV analysis: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "CV uploaded and analyzed successfully",
		"document": models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
			Analysis:     &analysis,
		},
	})
}

// HandleGetAnalysis handles GET /candidates/:id/analysis: the structured
// fields extracted from the candidate's latest CV, plus the source document.
func (h *UploadHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	analysis, err := h.cvRepo.FindByCandidate(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "CV analysis not found",
		})
	}

	response := fiber.Map{
		"analysis": analysis,
	}

	if doc, err := h.docRepo.FindLatestByCandidate(candidateID); err == nil {
		response["document"] = models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
		}
	}

	return c.JSON(response)
}
