package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const emptyAnalysis = "{}"

type CVUpload struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             string    `gorm:"type:varchar(100);index" json:"user_id"`
	FileName           string    `gorm:"type:varchar(255)" json:"file_name"`
	JobRole            string    `gorm:"type:varchar(255)" json:"job_role"`
	CVText             string    `gorm:"type:text" json:"-"`
	Analysis           string    `gorm:"type:jsonb" json:"-"`
	ATSScore           int       `gorm:"type:int" json:"ats_score"`
	JobMatchPercentage int       `gorm:"type:int" json:"job_match_percentage"`
	OptimizedContent   string    `gorm:"type:text" json:"optimized_content"`
	AnalysisDegraded   bool      `json:"analysis_degraded"`
	DegradedReason     string    `gorm:"type:text" json:"degraded_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (c *CVUpload) TableName() string {
	return "cv_uploads"
}

// AnalysisResult decodes the stored analysis. ok is false when the upload
// has not been analysed yet.
func (c *CVUpload) AnalysisResult() (result AnalysisResult, ok bool) {
	if c.Analysis == "" || c.Analysis == emptyAnalysis {
		return AnalysisResult{}, false
	}
	if err := json.Unmarshal([]byte(c.Analysis), &result); err != nil {
		return AnalysisResult{}, false
	}
	return result, true
}

func (c *CVUpload) SetAnalysis(result AnalysisResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	c.Analysis = string(raw)
	c.ATSScore = result.ATSScore
	c.JobMatchPercentage = result.JobMatchPercentage
	return nil
}

func (c *CVUpload) ClearAnalysis() {
	c.Analysis = emptyAnalysis
	c.ATSScore = 0
	c.JobMatchPercentage = 0
}
