package model

type JobListing struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	SalaryRange  string   `json:"salary_range"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Portal       string   `json:"portal"`
	URL          string   `json:"url"`
	PostedDate   string   `json:"posted_date"`
	JobType      string   `json:"job_type"`
}

// JobMatchResult carries listings plus the suggestion they were built from.
// TotalFound counts listings before truncation and may exceed len(Jobs).
type JobMatchResult struct {
	Jobs              []JobListing        `json:"jobs"`
	SearchSuggestions JobSearchSuggestion `json:"search_suggestions"`
	TotalFound        int                 `json:"total_found"`
	Degraded          bool                `json:"degraded"`
}

// JobRef identifies a listing a user wants to apply to.
type JobRef struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Portal  string `json:"portal"`
	URL     string `json:"url"`
}

type LearningResource struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

type JobResources struct {
	Courses           []LearningResource `json:"courses"`
	Certifications    []LearningResource `json:"certifications"`
	PracticePlatforms []LearningResource `json:"practice_platforms"`
	InterviewPrep     []LearningResource `json:"interview_prep"`
}

type ApplicationGuide struct {
	Job        JobRef       `json:"job"`
	Guide      string       `json:"guide"`
	PortalTips []string     `json:"portal_tips"`
	JobURL     string       `json:"job_url"`
	Checklist  []string     `json:"checklist"`
	Resources  JobResources `json:"resources"`
	Degraded   bool         `json:"degraded"`
}

type CustomSearchResult struct {
	Plan       SmartSearchPlan `json:"search_data"`
	Jobs       []JobListing    `json:"jobs"`
	TotalFound int             `json:"total_found"`
	Degraded   bool            `json:"degraded"`
}
