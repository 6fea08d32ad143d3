package dto

import (
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/google/uuid"
)

type CVUploadDTO struct {
	ID                 uuid.UUID             `json:"id"`
	FileName           string                `json:"file_name"`
	JobRole            string                `json:"job_role"`
	ATSScore           int                   `json:"ats_score"`
	JobMatchPercentage int                   `json:"job_match_percentage"`
	Analysis           *model.AnalysisResult `json:"analysis,omitempty"`
	AnalysisDegraded   bool                  `json:"analysis_degraded"`
	DegradedReason     string                `json:"degraded_reason,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func NewCVUploadDTO(upload *model.CVUpload) CVUploadDTO {
	out := CVUploadDTO{
		ID:                 upload.ID,
		FileName:           upload.FileName,
		JobRole:            upload.JobRole,
		ATSScore:           upload.ATSScore,
		JobMatchPercentage: upload.JobMatchPercentage,
		AnalysisDegraded:   upload.AnalysisDegraded,
		DegradedReason:     upload.DegradedReason,
		CreatedAt:          upload.CreatedAt,
		UpdatedAt:          upload.UpdatedAt,
	}
	if analysis, ok := upload.AnalysisResult(); ok {
		out.Analysis = &analysis
	}
	return out
}

type RegenerateResultDTO struct {
	ID              uuid.UUID `json:"id"`
	ATSScore        int       `json:"ats_score"`
	MatchPercentage int       `json:"match_percentage"`
	Degraded        bool      `json:"degraded"`
}

type AIStatusDTO struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
