package usecase

import (
	"context"
	"sync"

	"github.com/fadilmartias/cv-optimizer/internal/fallback"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// stubGenerator answers every prompt with the same text or error.
type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	return g.text, g.err
}

// spyJobAI records which AI operations the job matcher invoked.
type spyJobAI struct {
	mu            sync.Mutex
	suggestion    model.JobSearchSuggestion
	outcome       service.Outcome
	suggestCalls  int
	guideCalls    int
	lastLocation  string
	lastPlanInput service.SearchPlanInput
}

func (s *spyJobAI) SuggestJobs(ctx context.Context, analysis model.AnalysisResult, location string) (model.JobSearchSuggestion, service.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestCalls++
	s.lastLocation = location
	return s.suggestion, s.outcome
}

func (s *spyJobAI) GetApplicationGuide(ctx context.Context, jobTitle, companyName string) (string, service.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guideCalls++
	return "Guide for " + jobTitle + " at " + companyName, s.outcome
}

func (s *spyJobAI) PlanJobSearch(ctx context.Context, in service.SearchPlanInput) (model.SmartSearchPlan, service.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPlanInput = in
	return fallback.SmartSearchPlan(in.JobTitle, in.Skills), s.outcome
}

type fakeRenderer struct {
	title string
	text  string
	err   error
}

func (r *fakeRenderer) RenderTextToPDF(ctx context.Context, title, text string) ([]byte, error) {
	r.title = title
	r.text = text
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func suggestionWithTitles(titles ...string) model.JobSearchSuggestion {
	return model.JobSearchSuggestion{
		JobTitles:       titles,
		SearchKeywords:  []string{"go"},
		JobPortals:      []string{"LinkedIn"},
		ApplicationTips: []string{"Tailor your resume"},
	}
}
