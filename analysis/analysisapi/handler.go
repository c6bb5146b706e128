package analysisapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/skilllens/skilllens/account/accountauth"
	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/analysis/analysissrv"
	"github.com/skilllens/skilllens/pkg/kernel"
)

const historyLimit = 50

// Handlers provides HTTP handlers for analysis operations
type Handlers struct {
	service *analysissrv.Service
	version string
}

// NewHandlers creates a new analysis handlers instance
func NewHandlers(service *analysissrv.Service, version string) *Handlers {
	return &Handlers{
		service: service,
		version: version,
	}
}

// Root reports service identity
// GET /
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "SkillLens API",
		"status":  "active",
		"version": h.version,
	})
}

// Health reports liveness
// GET /health
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

// Analyze runs the full resume/job-description analysis
// POST /analyze
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return analysis.ErrFileRequired()
	}
	if fileHeader.Size > analysissrv.MaxUploadSize {
		return analysis.ErrFileTooLarge()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return analysis.ErrRegistry.NewWithCause(analysis.CodeDecodeFailed, err).
			WithDetail("error", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return analysis.ErrRegistry.NewWithCause(analysis.CodeDecodeFailed, err).
			WithDetail("error", err.Error())
	}

	jobDescription := c.FormValue("job_description")

	userID, _ := accountauth.GetUserID(c)

	report, err := h.service.AnalyzeUpload(c.Context(), analysissrv.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, jobDescription, userID)
	if err != nil {
		return err
	}

	return c.JSON(analysis.AnalyzeResponse{
		Success: true,
		Data:    report,
	})
}

// ExtractSkills extracts skills from free-form text
// POST /extract-skills
func (h *Handlers) ExtractSkills(c *fiber.Ctx) error {
	text := c.FormValue("text")
	if text == "" {
		return analysis.ErrTextRequired()
	}

	extracted := h.service.ExtractSkills(c.Context(), text)

	return c.JSON(analysis.ExtractSkillsResponse{
		Success: true,
		Skills:  extracted,
		Count:   len(extracted),
	})
}

// ListAnalyses returns the caller's analysis history
// GET /api/analyses
func (h *Handlers) ListAnalyses(c *fiber.Ctx) error {
	userID, ok := accountauth.GetUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	records, err := h.service.GetHistory(c.Context(), userID, historyLimit)
	if err != nil {
		return err
	}

	return c.JSON(analysis.ListRecordsResponse{
		Success:  true,
		Analyses: records,
		Count:    len(records),
	})
}

// GetAnalysis returns one analysis owned by the caller
// GET /api/analyses/:id
func (h *Handlers) GetAnalysis(c *fiber.Ctx) error {
	userID, ok := accountauth.GetUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	id := kernel.AnalysisID(c.Params("id"))
	if id == "" {
		return analysis.ErrAnalysisNotFound().WithDetail("id", "missing or empty")
	}

	record, err := h.service.GetRecord(c.Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(analysis.RecordResponse{
		Success:  true,
		Analysis: record,
	})
}

// DeleteAnalysis removes one analysis owned by the caller
// DELETE /api/analyses/:id
func (h *Handlers) DeleteAnalysis(c *fiber.Ctx) error {
	userID, ok := accountauth.GetUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	id := kernel.AnalysisID(c.Params("id"))
	if id == "" {
		return analysis.ErrAnalysisNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteRecord(c.Context(), id, userID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// RegisterRoutes registers all analysis routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *accountauth.Middleware) {
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health)
	app.Post("/analyze", authMiddleware.Optional(), handlers.Analyze)
	app.Post("/extract-skills", handlers.ExtractSkills)

	api := app.Group("/api/analyses")
	api.Get("/", authMiddleware.Required(), handlers.ListAnalyses)
	api.Get("/:id", authMiddleware.Required(), handlers.GetAnalysis)
	api.Delete("/:id", authMiddleware.Required(), handlers.DeleteAnalysis)
}
