package model

// AnalysisResult is the structured CV feedback produced by the AI adapter or
// the fallback provider. Every field is always populated.
type AnalysisResult struct {
	ATSScore           int               `json:"ats_score"`
	MissingSections    []string          `json:"missing_sections"`
	Improvements       []string          `json:"improvements"`
	KeywordSuggestions []string          `json:"keyword_suggestions"`
	OptimizedSections  map[string]string `json:"optimized_sections"`
	JobMatchPercentage int               `json:"job_match_percentage"`
}

type JobSearchSuggestion struct {
	JobTitles       []string `json:"job_titles"`
	SearchKeywords  []string `json:"search_keywords"`
	JobPortals      []string `json:"job_portals"`
	ApplicationTips []string `json:"application_tips"`
}

// SmartSearchPlan is the AI-assisted plan behind a custom job search.
type SmartSearchPlan struct {
	Keywords          []string `json:"keywords"`
	AlternativeTitles []string `json:"alternative_titles"`
	Skills            []string `json:"skills"`
	SalaryRange       string   `json:"salary_range"`
	Companies         []string `json:"companies"`
}
