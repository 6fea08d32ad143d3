package service

import (
	"encoding/json"
	"fmt"
)

func analysisPrompt(cvText, jobDescription string) string {
	return fmt.Sprintf(`
Analyze this CV and provide detailed feedback.

CV Content: %s
Job Description: %s

Return your answer STRICTLY as one JSON object, no markdown, with this schema:
{
	"ats_score": <integer 0-100>,
	"missing_sections": ["<section the CV lacks>", ...],
	"improvements": ["<concrete improvement>", ...],
	"keyword_suggestions": ["<keyword>", ...],
	"optimized_sections": {
		"summary": "<optimized professional summary>",
		"experience": "<enhanced experience section>",
		"skills": "<recommended skills section>"
	},
	"job_match_percentage": <integer 0-100>
}
Every list must contain at least one entry.
`, cvText, jobDescription)
}

func optimizedCVPrompt(cvText string, analysis any) string {
	return fmt.Sprintf(`
Create an ATS-optimized CV based on this analysis:

Original CV: %s
Analysis: %s

Generate a complete, professional CV with:
- ATS-friendly formatting
- Relevant keywords
- Quantified achievements
- Professional summary
- Skills section
- Experience with impact metrics

Return only the CV content in plain text format.
`, cvText, toJSON(analysis))
}

func jobSuggestionPrompt(analysis any, location string) string {
	return fmt.Sprintf(`
Based on this CV analysis, suggest job search terms and job types.

Analysis: %s
Location: %s

Return your answer STRICTLY as one JSON object, no markdown, with this schema:
{
	"job_titles": ["Software Engineer", "Data Analyst"],
	"search_keywords": ["python", "machine learning"],
	"job_portals": ["LinkedIn", "Indeed", "Naukri"],
	"application_tips": ["Customize resume for each job", "Write compelling cover letter"]
}
`, toJSON(analysis), location)
}

func applicationGuidePrompt(jobTitle, companyName string) string {
	return fmt.Sprintf(`
Provide a comprehensive job application guide for:
Job Title: %s
Company: %s

Include:
1. Application strategy
2. Interview preparation tips
3. Common questions
4. Skills to highlight
5. Resources for preparation

Format as structured text.
`, jobTitle, companyName)
}

func searchPlanPrompt(in SearchPlanInput) string {
	analysis := "{}"
	if in.Analysis != nil {
		analysis = toJSON(*in.Analysis)
	}
	return fmt.Sprintf(`
Generate a smart job search for:
Job Title: %s
Location: %s
Skills: %s
Experience: %s
CV Analysis: %s

Return your answer STRICTLY as one JSON object, no markdown, with this schema:
{
	"keywords": ["<optimized search keyword>", ...],
	"alternative_titles": ["<alternative job title>", ...],
	"skills": ["<skill to highlight>", ...],
	"salary_range": "<expected salary range>",
	"companies": ["<company to target>", ...]
}
`, in.JobTitle, in.Location, in.Skills, in.Experience, analysis)
}

func toJSON(v any) string {
	if v == nil {
		return "{}"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
