package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-optimizer/internal/fallback"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/repository"
	"github.com/fadilmartias/cv-optimizer/internal/response"
	"github.com/fadilmartias/cv-optimizer/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrCVNotFound             = errors.New("cv not found")
	ErrEmptyCV                = errors.New("cv text is empty")
	ErrOptimizedCVUnavailable = errors.New("optimized cv content not available")
)

// AnalysisReport is the orchestrator output for one CV.
type AnalysisReport struct {
	Result          model.AnalysisResult
	OptimizedCV     string
	AnalysisOutcome service.Outcome
	OptimizeOutcome service.Outcome
}

func (r AnalysisReport) Degraded() bool {
	return r.AnalysisOutcome.Degraded || r.OptimizeOutcome.Degraded
}

// DegradedReason joins the reasons of the degraded steps.
func (r AnalysisReport) DegradedReason() string {
	var reasons []string
	if r.AnalysisOutcome.Degraded {
		reasons = append(reasons, "analysis: "+r.AnalysisOutcome.ReasonText())
	}
	if r.OptimizeOutcome.Degraded {
		reasons = append(reasons, "optimization: "+r.OptimizeOutcome.ReasonText())
	}
	return strings.Join(reasons, "; ")
}

type UploadInput struct {
	UserID   string
	FileName string
	JobRole  string
	CVText   string
}

// OptimizedView is what the optimized-CV page renders.
type OptimizedView struct {
	CV               *model.CVUpload      `json:"cv"`
	Analysis         model.AnalysisResult `json:"analysis"`
	Analysed         bool                 `json:"analysed"`
	OptimizedContent string               `json:"optimized_content"`
	MissingSections  []string             `json:"missing_sections"`
	Improvements     []string             `json:"improvements"`
	Keywords         []string             `json:"keywords"`
	MatchPercentage  int                  `json:"match_percentage"`
}

type AnalysisUsecase struct {
	ai       AnalysisAI
	store    CVUploadStore
	renderer PDFRenderer
	logger   *logrus.Logger
}

func NewAnalysisUsecase(ai AnalysisAI, store CVUploadStore, renderer PDFRenderer, logger *logrus.Logger) *AnalysisUsecase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AnalysisUsecase{ai: ai, store: store, renderer: renderer, logger: logger}
}

// Analyze runs the two AI steps in order. The optimization step always gets
// a complete analysis, real or fallback, and the call never fails.
func (uc *AnalysisUsecase) Analyze(ctx context.Context, cvText, jobDescription string) AnalysisReport {
	result, analysisOutcome := uc.ai.AnalyzeCV(ctx, cvText, jobDescription)
	optimized, optimizeOutcome := uc.ai.GenerateOptimizedCV(ctx, cvText, result)

	return AnalysisReport{
		Result:          result,
		OptimizedCV:     optimized,
		AnalysisOutcome: analysisOutcome,
		OptimizeOutcome: optimizeOutcome,
	}
}

// Upload analyses the CV and stores the record with its result in one write.
func (uc *AnalysisUsecase) Upload(ctx context.Context, in UploadInput) (*model.CVUpload, error) {
	if strings.TrimSpace(in.CVText) == "" {
		return nil, ErrEmptyCV
	}

	upload := &model.CVUpload{
		ID:       uuid.New(),
		UserID:   in.UserID,
		FileName: in.FileName,
		JobRole:  in.JobRole,
		CVText:   in.CVText,
	}
	if err := uc.recordAnalysis(ctx, upload, in.JobRole); err != nil {
		return nil, err
	}
	if err := uc.store.Create(ctx, upload); err != nil {
		return nil, fmt.Errorf("create cv upload: %w", err)
	}
	uc.logStored(upload)
	return upload, nil
}

// Regenerate re-runs the analysis on the stored text. An empty job
// description falls back to the job role given at upload time.
func (uc *AnalysisUsecase) Regenerate(ctx context.Context, userID, cvID, jobDescription string) (*model.CVUpload, error) {
	upload, err := uc.find(ctx, userID, cvID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(jobDescription) == "" {
		jobDescription = upload.JobRole
	}
	if err := uc.applyAnalysis(ctx, upload, jobDescription); err != nil {
		return nil, err
	}
	return upload, nil
}

func (uc *AnalysisUsecase) OptimizedView(ctx context.Context, userID, cvID string) (*OptimizedView, error) {
	upload, err := uc.find(ctx, userID, cvID)
	if err != nil {
		return nil, err
	}

	view := &OptimizedView{
		CV:               upload,
		OptimizedContent: upload.OptimizedContent,
		MatchPercentage:  upload.JobMatchPercentage,
	}
	if view.OptimizedContent == "" {
		view.OptimizedContent = fallback.PendingOptimizedContent
	}

	analysis, ok := upload.AnalysisResult()
	if !ok {
		analysis = fallback.PendingAnalysis()
	}
	view.Analysis = analysis
	view.Analysed = ok
	view.MissingSections = analysis.MissingSections
	view.Improvements = analysis.Improvements
	view.Keywords = analysis.KeywordSuggestions
	return view, nil
}

// DownloadOptimizedPDF returns the rendered PDF and its attachment name.
func (uc *AnalysisUsecase) DownloadOptimizedPDF(ctx context.Context, userID, cvID string) ([]byte, string, error) {
	upload, err := uc.find(ctx, userID, cvID)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(upload.OptimizedContent) == "" {
		return nil, "", ErrOptimizedCVUnavailable
	}

	pdf, err := uc.renderer.RenderTextToPDF(ctx, "AI Optimized CV", upload.OptimizedContent)
	if err != nil {
		return nil, "", fmt.Errorf("render optimized cv: %w", err)
	}
	return pdf, fmt.Sprintf("AI_Optimized_%s_CV.pdf", upload.UserID), nil
}

func (uc *AnalysisUsecase) List(ctx context.Context, userID string, page, pageSize int) ([]model.CVUpload, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}
	offset := (page - 1) * pageSize

	uploads, total, err := uc.store.ListByUser(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("list cv uploads: %w", err)
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       offset + 1,
		To:         offset + len(uploads),
	}
	if len(uploads) == 0 {
		pagination.From = 0
		pagination.To = 0
	}
	return uploads, pagination, nil
}

// StoredAnalysis returns the persisted analysis of an upload, or a zero
// value when it was never analysed.
func (uc *AnalysisUsecase) StoredAnalysis(ctx context.Context, userID, cvID string) (model.AnalysisResult, error) {
	upload, err := uc.find(ctx, userID, cvID)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	analysis, _ := upload.AnalysisResult()
	return analysis, nil
}

func (uc *AnalysisUsecase) applyAnalysis(ctx context.Context, upload *model.CVUpload, jobDescription string) error {
	if err := uc.recordAnalysis(ctx, upload, jobDescription); err != nil {
		return err
	}
	if err := uc.store.Update(ctx, upload); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	uc.logStored(upload)
	return nil
}

// recordAnalysis runs the orchestrator and copies its report onto upload
// without persisting it.
func (uc *AnalysisUsecase) recordAnalysis(ctx context.Context, upload *model.CVUpload, jobDescription string) error {
	report := uc.Analyze(ctx, upload.CVText, jobDescription)

	if err := upload.SetAnalysis(report.Result); err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	upload.OptimizedContent = report.OptimizedCV
	upload.AnalysisDegraded = report.Degraded()
	upload.DegradedReason = report.DegradedReason()
	return nil
}

func (uc *AnalysisUsecase) logStored(upload *model.CVUpload) {
	uc.logger.WithFields(logrus.Fields{
		"cv_id":     upload.ID.String(),
		"ats_score": upload.ATSScore,
		"match":     upload.JobMatchPercentage,
		"degraded":  upload.AnalysisDegraded,
	}).Info("cv analysis stored")
}

func (uc *AnalysisUsecase) find(ctx context.Context, userID, cvID string) (*model.CVUpload, error) {
	upload, err := uc.store.FindByIDForUser(ctx, cvID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCVNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cv upload: %w", err)
	}
	return upload, nil
}
