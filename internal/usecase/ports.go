package usecase

import (
	"context"

	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/service"
)

type AnalysisAI interface {
	AnalyzeCV(ctx context.Context, cvText, jobDescription string) (model.AnalysisResult, service.Outcome)
	GenerateOptimizedCV(ctx context.Context, cvText string, analysis model.AnalysisResult) (string, service.Outcome)
}

type JobAI interface {
	SuggestJobs(ctx context.Context, analysis model.AnalysisResult, location string) (model.JobSearchSuggestion, service.Outcome)
	GetApplicationGuide(ctx context.Context, jobTitle, companyName string) (string, service.Outcome)
	PlanJobSearch(ctx context.Context, in service.SearchPlanInput) (model.SmartSearchPlan, service.Outcome)
}

type CVUploadStore interface {
	Create(ctx context.Context, upload *model.CVUpload) error
	Update(ctx context.Context, upload *model.CVUpload) error
	FindByIDForUser(ctx context.Context, id, userID string) (*model.CVUpload, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CVUpload, int64, error)
}

type PDFRenderer interface {
	RenderTextToPDF(ctx context.Context, title, text string) ([]byte, error)
}
