package handler

import (
	"strings"

	"github.com/fadilmartias/cv-optimizer/internal/dto"
	"github.com/fadilmartias/cv-optimizer/internal/middleware"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/usecase"
	"github.com/fadilmartias/cv-optimizer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobs     *usecase.JobMatchingUsecase
	analysis *usecase.AnalysisUsecase
	status   dto.AIStatusDTO
}

func NewJobHandler(jobs *usecase.JobMatchingUsecase, analysis *usecase.AnalysisUsecase, status dto.AIStatusDTO) *JobHandler {
	return &JobHandler{jobs: jobs, analysis: analysis, status: status}
}

func (h *JobHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ai/status", h.AIStatus)

	jobs := router.Group("/jobs", middleware.RequireUser())
	jobs.Get("/guide", h.Guide)
	jobs.Post("/search", h.CustomSearch)
}

func (h *JobHandler) AIStatus(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get ai status",
		Data:    h.status,
	})
}

func (h *JobHandler) Guide(c *fiber.Ctx) error {
	var q dto.GuideQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, "invalid query", util.NewFormError("invalid query", map[string]string{"query": err.Error()}))
	}
	if err := util.ValidateStruct(q); err != nil {
		return respondError(c, "invalid query", err)
	}

	guide := h.jobs.ApplicationGuide(c.UserContext(), model.JobRef{
		Title:   strings.TrimSpace(q.Title),
		Company: strings.TrimSpace(q.Company),
		Portal:  q.Portal,
		URL:     q.URL,
	})
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application guide",
		Data:    guide,
	})
}

// CustomSearch builds a search plan for the requested title. When cv_id is
// given the stored analysis of that CV is folded into the plan prompt.
func (h *JobHandler) CustomSearch(c *fiber.Ctx) error {
	var req dto.CustomSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "invalid body", util.NewFormError("invalid body", map[string]string{"body": err.Error()}))
	}
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	if err := util.ValidateStruct(req); err != nil {
		return respondError(c, "invalid body", err)
	}

	in := usecase.CustomSearchInput{
		JobTitle:   req.JobTitle,
		Location:   strings.TrimSpace(req.Location),
		Skills:     req.Skills,
		Experience: req.Experience,
	}
	if req.CVID != "" {
		analysis, err := h.analysis.StoredAnalysis(c.UserContext(), middleware.UserID(c), req.CVID)
		if err != nil {
			return respondError(c, "failed to load cv", err)
		}
		in.Analysis = &analysis
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search jobs",
		Data:    h.jobs.CustomSearch(c.UserContext(), in),
	})
}
