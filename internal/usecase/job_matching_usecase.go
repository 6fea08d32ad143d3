package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/cv-optimizer/internal/fallback"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	DefaultJobLimit = 20

	// maxSuggestedTitles bounds how many AI-suggested titles are searched.
	maxSuggestedTitles = 5
)

type MatchInput struct {
	Analysis model.AnalysisResult
	Location string
	JobTitle string
	Limit    int
}

type CustomSearchInput struct {
	JobTitle   string
	Location   string
	Skills     string
	Experience string
	Analysis   *model.AnalysisResult
}

type JobMatchingUsecase struct {
	ai     JobAI
	logger *logrus.Logger
}

func NewJobMatchingUsecase(ai JobAI, logger *logrus.Logger) *JobMatchingUsecase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &JobMatchingUsecase{ai: ai, logger: logger}
}

// FindMatchingJobs searches listings for an explicit title, or for each
// AI-suggested title with limit split evenly between them. The split uses
// integer division, so fewer than limit listings may come back.
func (uc *JobMatchingUsecase) FindMatchingJobs(ctx context.Context, in MatchInput) model.JobMatchResult {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}

	if title := strings.TrimSpace(in.JobTitle); title != "" {
		jobs := fallback.PlaceholderListings(title, in.Location, limit)
		return model.JobMatchResult{
			Jobs:              truncate(jobs, limit),
			SearchSuggestions: fallback.ExplicitTitleSuggestion(title),
			TotalFound:        len(jobs),
		}
	}

	suggestion, outcome := uc.ai.SuggestJobs(ctx, in.Analysis, in.Location)
	if len(suggestion.JobTitles) == 0 {
		suggestion = fallback.JobSuggestions()
		outcome = service.Outcome{Degraded: true, Reason: service.ErrAIResponseInvalid}
	}
	titles := suggestion.JobTitles
	if len(titles) > maxSuggestedTitles {
		titles = titles[:maxSuggestedTitles]
	}

	perTitle := limit / len(titles)
	jobs := make([]model.JobListing, 0, limit)
	for _, title := range titles {
		jobs = append(jobs, fallback.PlaceholderListings(title, in.Location, perTitle)...)
	}

	uc.logger.WithFields(logrus.Fields{
		"titles":    len(titles),
		"per_title": perTitle,
		"found":     len(jobs),
		"degraded":  outcome.Degraded,
	}).Debug("job matching completed")

	return model.JobMatchResult{
		Jobs:              truncate(jobs, limit),
		SearchSuggestions: suggestion,
		TotalFound:        len(jobs),
		Degraded:          outcome.Degraded,
	}
}

func (uc *JobMatchingUsecase) ApplicationGuide(ctx context.Context, job model.JobRef) model.ApplicationGuide {
	guide, outcome := uc.ai.GetApplicationGuide(ctx, job.Title, job.Company)
	return model.ApplicationGuide{
		Job:        job,
		Guide:      guide,
		PortalTips: fallback.PortalTips(job.Portal),
		JobURL:     job.URL,
		Checklist:  fallback.ApplicationChecklist(),
		Resources:  fallback.JobResources(),
		Degraded:   outcome.Degraded,
	}
}

// CustomSearch asks the AI for a search plan and pairs it with listings for
// the requested title.
func (uc *JobMatchingUsecase) CustomSearch(ctx context.Context, in CustomSearchInput) model.CustomSearchResult {
	plan, outcome := uc.ai.PlanJobSearch(ctx, service.SearchPlanInput{
		JobTitle:   in.JobTitle,
		Location:   in.Location,
		Skills:     in.Skills,
		Experience: in.Experience,
		Analysis:   in.Analysis,
	})

	jobs := fallback.PlaceholderListings(in.JobTitle, in.Location, fallback.ListingBatchSize())
	return model.CustomSearchResult{
		Plan:       plan,
		Jobs:       jobs,
		TotalFound: len(jobs),
		Degraded:   outcome.Degraded,
	}
}

func truncate(jobs []model.JobListing, limit int) []model.JobListing {
	if len(jobs) > limit {
		return jobs[:limit]
	}
	return jobs
}
