package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/dto"
	"github.com/fadilmartias/cv-optimizer/internal/middleware"
	"github.com/fadilmartias/cv-optimizer/internal/usecase"
	"github.com/fadilmartias/cv-optimizer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSize = 5 * 1024 * 1024

type CVHandler struct {
	analysis  *usecase.AnalysisUsecase
	jobs      *usecase.JobMatchingUsecase
	uploadDir string
}

func NewCVHandler(analysis *usecase.AnalysisUsecase, jobs *usecase.JobMatchingUsecase, uploadDir string) *CVHandler {
	return &CVHandler{analysis: analysis, jobs: jobs, uploadDir: uploadDir}
}

func (h *CVHandler) RegisterRoutes(router fiber.Router) {
	cvs := router.Group("/cvs", middleware.RequireUser())
	cvs.Post("/", middleware.RateLimiter(5, time.Minute), h.Upload)
	cvs.Get("/", h.List)
	cvs.Get("/:id/optimized", h.Optimized)
	cvs.Get("/:id/optimized/download", h.DownloadOptimized)
	cvs.Post("/:id/regenerate", middleware.RateLimiter(5, time.Minute), h.Regenerate)
	cvs.Get("/:id/jobs", h.MatchingJobs)
}

func (h *CVHandler) Upload(c *fiber.Ctx) error {
	text, fileName, err := h.processFile(c, "cv")
	if err != nil {
		return respondError(c, "failed to read cv file", err)
	}

	upload, err := h.analysis.Upload(c.UserContext(), usecase.UploadInput{
		UserID:   middleware.UserID(c),
		FileName: fileName,
		JobRole:  strings.TrimSpace(c.FormValue("job_role")),
		CVText:   text,
	})
	if err != nil {
		return respondError(c, "failed to analyse cv", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "CV uploaded and analysed",
		Data:    dto.NewCVUploadDTO(upload),
	})
}

func (h *CVHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, "invalid query", util.NewFormError("invalid query", map[string]string{"query": err.Error()}))
	}
	if err := util.ValidateStruct(q); err != nil {
		return respondError(c, "invalid query", err)
	}

	uploads, pagination, err := h.analysis.List(c.UserContext(), middleware.UserID(c), q.Page, q.PageSize)
	if err != nil {
		return respondError(c, "failed to list cvs", err)
	}

	data := make([]dto.CVUploadDTO, 0, len(uploads))
	for i := range uploads {
		data = append(data, dto.NewCVUploadDTO(&uploads[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get cvs",
		Data:       data,
		Pagination: pagination,
	})
}

func (h *CVHandler) Optimized(c *fiber.Ctx) error {
	id, err := cvID(c)
	if err != nil {
		return respondError(c, "invalid cv id", err)
	}

	view, err := h.analysis.OptimizedView(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return respondError(c, "failed to load optimized cv", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get optimized cv",
		Data:    view,
	})
}

func (h *CVHandler) DownloadOptimized(c *fiber.Ctx) error {
	id, err := cvID(c)
	if err != nil {
		return respondError(c, "invalid cv id", err)
	}

	pdf, fileName, err := h.analysis.DownloadOptimizedPDF(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return respondError(c, "failed to render optimized cv", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(pdf)
}

func (h *CVHandler) Regenerate(c *fiber.Ctx) error {
	id, err := cvID(c)
	if err != nil {
		return respondError(c, "invalid cv id", err)
	}

	var req dto.RegenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, "invalid body", util.NewFormError("invalid body", map[string]string{"body": err.Error()}))
		}
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondError(c, "invalid body", err)
	}

	upload, err := h.analysis.Regenerate(c.UserContext(), middleware.UserID(c), id, req.JobDescription)
	if err != nil {
		return respondError(c, "Failed to regenerate analysis", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Analysis regenerated successfully!",
		Data: dto.RegenerateResultDTO{
			ID:              upload.ID,
			ATSScore:        upload.ATSScore,
			MatchPercentage: upload.JobMatchPercentage,
			Degraded:        upload.AnalysisDegraded,
		},
	})
}

func (h *CVHandler) MatchingJobs(c *fiber.Ctx) error {
	id, err := cvID(c)
	if err != nil {
		return respondError(c, "invalid cv id", err)
	}

	var q dto.JobMatchQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, "invalid query", util.NewFormError("invalid query", map[string]string{"query": err.Error()}))
	}
	if err := util.ValidateStruct(q); err != nil {
		return respondError(c, "invalid query", err)
	}

	analysis, err := h.analysis.StoredAnalysis(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return respondError(c, "failed to load cv", err)
	}

	result := h.jobs.FindMatchingJobs(c.UserContext(), usecase.MatchInput{
		Analysis: analysis,
		Location: q.Location,
		JobTitle: q.JobTitle,
		Limit:    q.Limit,
	})
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get matching jobs",
		Data:    result,
		Meta:    fiber.Map{"location": q.Location},
	})
}

// processFile extracts the text of the uploaded file through a temporary copy
// in the upload dir and returns it with the client's original file name.
func (h *CVHandler) processFile(c *fiber.Ctx, fieldName string) (string, string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", "", util.NewFormError(fmt.Sprintf("%s file is required", fieldName), map[string]string{fieldName: "is required"})
	}
	if file.Size > maxUploadSize {
		return "", "", util.NewFormError(fmt.Sprintf("%s file size is too large (max 5MB)", fieldName), map[string]string{fieldName: "too large"})
	}

	originalName := filepath.Base(file.Filename)
	if !util.SupportedExtension(originalName) {
		return "", "", util.NewFormError(fmt.Sprintf("unsupported %s file type", fieldName), map[string]string{fieldName: "must be .pdf or .txt"})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}
	savePath := filepath.Join(h.uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(originalName)))
	if err := c.SaveFile(file, savePath); err != nil {
		return "", "", fmt.Errorf("cannot save %s file: %w", fieldName, err)
	}
	// the extracted text is what gets persisted
	defer os.Remove(savePath)

	text, err := util.ExtractText(savePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract %s text: %w", fieldName, err)
	}
	return text, originalName, nil
}

func cvID(c *fiber.Ctx) (string, error) {
	var p dto.CVPathParams
	if err := c.ParamsParser(&p); err != nil {
		return "", util.NewFormError("invalid path", map[string]string{"id": err.Error()})
	}
	if err := util.ValidateStruct(p); err != nil {
		return "", err
	}
	return p.ID, nil
}
