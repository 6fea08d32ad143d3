package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/fallback"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/sirupsen/logrus"
)

var (
	ErrAIDisabled        = errors.New("ai backend disabled")
	ErrAICallFailed      = errors.New("ai call failed")
	ErrAIResponseInvalid = errors.New("ai response invalid")
)

const DefaultRequestTimeout = 60 * time.Second

// Outcome reports whether a value came from the model or from fallback data.
type Outcome struct {
	Degraded bool
	Reason   error
}

func (o Outcome) ReasonText() string {
	if o.Reason == nil {
		return ""
	}
	return o.Reason.Error()
}

// SearchPlanInput feeds PlanJobSearch.
type SearchPlanInput struct {
	JobTitle   string
	Location   string
	Skills     string
	Experience string
	Analysis   *model.AnalysisResult
}

// CVAnalyzer wraps a TextGenerator with one method per AI task. It never
// returns an error: failures resolve to fallback data with a degraded Outcome.
// The enabled state is fixed at construction.
type CVAnalyzer struct {
	generator TextGenerator
	model     string
	timeout   time.Duration
	enabled   bool
	logger    *logrus.Logger
}

// NewCVAnalyzer builds an analyzer. A nil generator or empty model yields a
// permanently disabled analyzer.
func NewCVAnalyzer(generator TextGenerator, modelName string, timeout time.Duration, logger *logrus.Logger) *CVAnalyzer {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CVAnalyzer{
		generator: generator,
		model:     modelName,
		timeout:   timeout,
		enabled:   generator != nil && modelName != "",
		logger:    logger,
	}
}

func (a *CVAnalyzer) Enabled() bool { return a.enabled }

func (a *CVAnalyzer) Model() string { return a.model }

func (a *CVAnalyzer) AnalyzeCV(ctx context.Context, cvText, jobDescription string) (model.AnalysisResult, Outcome) {
	text, err := a.generate(ctx, "analyze_cv", analysisPrompt(cvText, jobDescription))
	if err != nil {
		return fallback.Analysis(), a.degrade("analyze_cv", err)
	}

	var result model.AnalysisResult
	if err := decodeStructured(text, analysisSchema, &result); err != nil {
		return fallback.Analysis(), a.degrade("analyze_cv", err)
	}
	if result.OptimizedSections == nil {
		result.OptimizedSections = map[string]string{}
	}
	return result, Outcome{}
}

func (a *CVAnalyzer) GenerateOptimizedCV(ctx context.Context, cvText string, analysis model.AnalysisResult) (string, Outcome) {
	text, err := a.generate(ctx, "generate_optimized_cv", optimizedCVPrompt(cvText, analysis))
	if err != nil {
		return fallback.OptimizedCV(cvText), a.degrade("generate_optimized_cv", err)
	}
	return strings.TrimSpace(text), Outcome{}
}

func (a *CVAnalyzer) SuggestJobs(ctx context.Context, analysis model.AnalysisResult, location string) (model.JobSearchSuggestion, Outcome) {
	text, err := a.generate(ctx, "suggest_jobs", jobSuggestionPrompt(analysis, location))
	if err != nil {
		return fallback.JobSuggestions(), a.degrade("suggest_jobs", err)
	}

	var suggestion model.JobSearchSuggestion
	if err := decodeStructured(text, jobSuggestionSchema, &suggestion); err != nil {
		return fallback.JobSuggestions(), a.degrade("suggest_jobs", err)
	}
	return suggestion, Outcome{}
}

func (a *CVAnalyzer) GetApplicationGuide(ctx context.Context, jobTitle, companyName string) (string, Outcome) {
	text, err := a.generate(ctx, "application_guide", applicationGuidePrompt(jobTitle, companyName))
	if err != nil {
		return fallback.ApplicationGuide(jobTitle), a.degrade("application_guide", err)
	}
	return strings.TrimSpace(text), Outcome{}
}

func (a *CVAnalyzer) PlanJobSearch(ctx context.Context, in SearchPlanInput) (model.SmartSearchPlan, Outcome) {
	text, err := a.generate(ctx, "plan_job_search", searchPlanPrompt(in))
	if err != nil {
		return fallback.SmartSearchPlan(in.JobTitle, in.Skills), a.degrade("plan_job_search", err)
	}

	var plan model.SmartSearchPlan
	if err := decodeStructured(text, searchPlanSchema, &plan); err != nil {
		return fallback.SmartSearchPlan(in.JobTitle, in.Skills), a.degrade("plan_job_search", err)
	}
	return plan, Outcome{}
}

// generate performs one call bounded by the analyzer timeout. There are no
// retries.
func (a *CVAnalyzer) generate(ctx context.Context, op, prompt string) (string, error) {
	if !a.enabled {
		return "", ErrAIDisabled
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	text, err := a.generator.GenerateText(callCtx, a.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAICallFailed, op, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s: empty output", ErrAIResponseInvalid, op)
	}

	a.logger.WithFields(logrus.Fields{
		"operation": op,
		"model":     a.model,
		"duration":  time.Since(start),
	}).Debug("ai call completed")
	return text, nil
}

func (a *CVAnalyzer) degrade(op string, err error) Outcome {
	entry := a.logger.WithFields(logrus.Fields{
		"operation": op,
		"model":     a.model,
		"error":     err.Error(),
	})
	if errors.Is(err, ErrAIDisabled) {
		entry.Debug("ai disabled, serving fallback data")
	} else {
		entry.Warn("ai call degraded to fallback data")
	}
	return Outcome{Degraded: true, Reason: err}
}
