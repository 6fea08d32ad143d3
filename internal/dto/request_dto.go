package dto

type CVPathParams struct {
	ID string `params:"id" validate:"required,uuid"`
}

type ListQuery struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=50"`
}

type RegenerateRequest struct {
	JobDescription string `json:"job_description" form:"job_description" validate:"max=20000"`
}

type JobMatchQuery struct {
	Location string `query:"location" validate:"max=200"`
	JobTitle string `query:"job_title" validate:"max=200"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type GuideQuery struct {
	Title   string `query:"title" validate:"required,max=200"`
	Company string `query:"company" validate:"max=200"`
	Portal  string `query:"portal" validate:"max=100"`
	URL     string `query:"url" validate:"omitempty,url"`
}

type CustomSearchRequest struct {
	JobTitle   string `json:"job_title" form:"job_title" validate:"required,max=200"`
	Location   string `json:"location" form:"location" validate:"max=200"`
	Skills     string `json:"skills" form:"skills" validate:"max=2000"`
	Experience string `json:"experience" form:"experience" validate:"max=2000"`
	CVID       string `json:"cv_id" form:"cv_id" validate:"omitempty,uuid"`
}
