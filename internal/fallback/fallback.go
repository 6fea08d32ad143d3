// Package fallback holds the fixed payloads served whenever the AI backend is
// disabled or its output cannot be used. Every function returns a fresh value
// so callers may mutate what they receive.
package fallback

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-optimizer/internal/model"
)

// OptimizedCVNote marks optimized CV text that came from the template below.
const OptimizedCVNote = "Note: This is a sample optimized CV"

// originalExcerptLimit is counted in characters, not bytes.
const originalExcerptLimit = 500

// PendingOptimizedContent is shown for uploads that were never analysed.
const PendingOptimizedContent = "AI analysis not yet performed. Please regenerate analysis."

func Analysis() model.AnalysisResult {
	return model.AnalysisResult{
		ATSScore:        75,
		MissingSections: []string{"Professional Summary", "Skills Section", "Keywords Optimization"},
		Improvements: []string{
			"Add relevant keywords for your target role",
			"Include quantified achievements in experience",
			"Optimize formatting for ATS compatibility",
			"Add a professional summary section",
			"Include technical skills section",
		},
		KeywordSuggestions: []string{
			"Python", "Django", "Web Development", "Problem Solving",
			"Team Collaboration", "Project Management", "Database Management",
		},
		OptimizedSections: map[string]string{
			"summary":    "Professional summary with key achievements and skills",
			"experience": "Enhanced experience section with quantified results",
			"skills":     "Comprehensive skills section with relevant technologies",
		},
		JobMatchPercentage: 70,
	}
}

// PendingAnalysis is the view data for an upload without a stored analysis.
func PendingAnalysis() model.AnalysisResult {
	return model.AnalysisResult{
		ATSScore:           0,
		MissingSections:    []string{"Professional Summary", "Skills Section", "Keywords Optimization"},
		Improvements:       []string{"Add relevant keywords", "Improve formatting", "Enhance job descriptions"},
		KeywordSuggestions: []string{"Python", "Django", "Web Development", "Problem Solving"},
		OptimizedSections:  map[string]string{},
		JobMatchPercentage: 0,
	}
}

const optimizedCVTemplate = `
PROFESSIONAL SUMMARY
====================
Experienced professional with strong technical skills and proven track record of delivering results. 
Seeking to leverage expertise in a challenging role that offers growth opportunities.

CORE COMPETENCIES
=================
• Python Programming
• Web Development
• Database Management
• Problem Solving
• Team Collaboration
• Project Management
• Technical Documentation

PROFESSIONAL EXPERIENCE
======================
[Enhanced version of your original experience with quantified achievements]

EDUCATION
=========
[Your educational background]

TECHNICAL SKILLS
===============
• Programming Languages: Python, JavaScript, SQL
• Frameworks: Django, React, Bootstrap
• Databases: MySQL, PostgreSQL, SQLite
• Tools: Git, Docker, AWS
• Methodologies: Agile, Scrum

CERTIFICATIONS
=============
[Relevant certifications]

%s. For best results, please configure the AI API key.

Original CV Content:
%s...
`

func OptimizedCV(original string) string {
	return fmt.Sprintf(optimizedCVTemplate, OptimizedCVNote, Excerpt(original, originalExcerptLimit))
}

// Excerpt returns at most n leading characters of s.
func Excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func JobSuggestions() model.JobSearchSuggestion {
	return model.JobSearchSuggestion{
		JobTitles:       []string{"Software Developer", "Web Developer", "Python Developer"},
		SearchKeywords:  []string{"python", "django", "web development"},
		JobPortals:      DefaultPortals(),
		ApplicationTips: []string{"Customize resume", "Write cover letter"},
	}
}

// ExplicitTitleSuggestion is reported when the caller named the job title, so
// no suggestion was requested.
func ExplicitTitleSuggestion(jobTitle string) model.JobSearchSuggestion {
	return model.JobSearchSuggestion{
		JobTitles:       []string{jobTitle},
		SearchKeywords:  []string{strings.ToLower(jobTitle)},
		JobPortals:      DefaultPortals(),
		ApplicationTips: []string{"Customize resume", "Write cover letter"},
	}
}

func DefaultPortals() []string {
	return []string{"LinkedIn", "Indeed", "Naukri"}
}

func ApplicationGuide(jobTitle string) string {
	return fmt.Sprintf("Application guide for %s - Please configure the AI API for detailed guidance.", jobTitle)
}

// SmartSearchPlan splits the comma separated skills the user typed in.
func SmartSearchPlan(jobTitle, skills string) model.SmartSearchPlan {
	plan := model.SmartSearchPlan{
		Keywords:          []string{jobTitle},
		AlternativeTitles: []string{jobTitle},
		Skills:            []string{},
		SalaryRange:       "Competitive",
		Companies:         []string{"Top Companies"},
	}
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			plan.Skills = append(plan.Skills, s)
		}
	}
	return plan
}

func ApplicationChecklist() []string {
	return []string{
		"Customize resume for this role",
		"Write targeted cover letter",
		"Research company background",
		"Prepare for common interview questions",
		"Practice technical skills if required",
	}
}

func PortalTips(portal string) []string {
	switch portal {
	case "LinkedIn":
		return []string{
			"Optimize your LinkedIn profile",
			"Connect with employees at the company",
			"Use LinkedIn messaging for follow-ups",
		}
	case "Indeed":
		return []string{
			"Upload your resume to Indeed",
			"Set up job alerts",
			"Apply within 24-48 hours of posting",
		}
	case "Naukri":
		return []string{
			"Keep your profile updated",
			"Use relevant keywords",
			"Apply through mobile app for faster response",
		}
	case "Glassdoor":
		return []string{
			"Read company reviews",
			"Check salary insights",
			"Prepare for company-specific interview questions",
		}
	default:
		return []string{"Follow standard application process"}
	}
}

func JobResources() model.JobResources {
	return model.JobResources{
		Courses: []model.LearningResource{
			{Name: "Python for Beginners", Source: "Coursera", URL: "#"},
			{Name: "Web Development Bootcamp", Source: "Udemy", URL: "#"},
		},
		Certifications: []model.LearningResource{
			{Name: "AWS Certified Developer", Source: "Amazon", URL: "#"},
			{Name: "Google Cloud Professional", Source: "Google", URL: "#"},
		},
		PracticePlatforms: []model.LearningResource{
			{Name: "LeetCode", Source: "Coding Practice", URL: "https://leetcode.com"},
			{Name: "HackerRank", Source: "Technical Skills", URL: "https://hackerrank.com"},
		},
		InterviewPrep: []model.LearningResource{
			{Name: "Pramp", Source: "Mock Interviews", URL: "https://pramp.com"},
			{Name: "InterviewBit", Source: "Technical Prep", URL: "https://interviewbit.com"},
		},
	}
}
