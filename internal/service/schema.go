package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

const analysisSchemaJSON = `{
  "type": "object",
  "required": ["ats_score", "missing_sections", "improvements", "keyword_suggestions", "optimized_sections", "job_match_percentage"],
  "properties": {
    "ats_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "missing_sections": {"$ref": "#/definitions/nonEmptyStrings"},
    "improvements": {"$ref": "#/definitions/nonEmptyStrings"},
    "keyword_suggestions": {"$ref": "#/definitions/nonEmptyStrings"},
    "optimized_sections": {"type": "object", "additionalProperties": {"type": "string"}},
    "job_match_percentage": {"type": "integer", "minimum": 0, "maximum": 100}
  },
  "definitions": {
    "nonEmptyStrings": {"type": "array", "minItems": 1, "items": {"type": "string"}}
  }
}`

const jobSuggestionSchemaJSON = `{
  "type": "object",
  "required": ["job_titles", "search_keywords", "job_portals", "application_tips"],
  "properties": {
    "job_titles": {"$ref": "#/definitions/nonEmptyStrings"},
    "search_keywords": {"$ref": "#/definitions/nonEmptyStrings"},
    "job_portals": {"$ref": "#/definitions/nonEmptyStrings"},
    "application_tips": {"$ref": "#/definitions/nonEmptyStrings"}
  },
  "definitions": {
    "nonEmptyStrings": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
  }
}`

const searchPlanSchemaJSON = `{
  "type": "object",
  "required": ["keywords", "alternative_titles", "skills", "salary_range", "companies"],
  "properties": {
    "keywords": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "alternative_titles": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "skills": {"type": "array", "items": {"type": "string"}},
    "salary_range": {"type": "string"},
    "companies": {"type": "array", "minItems": 1, "items": {"type": "string"}}
  }
}`

var (
	analysisSchema      = mustSchema(analysisSchemaJSON)
	jobSuggestionSchema = mustSchema(jobSuggestionSchemaJSON)
	searchPlanSchema    = mustSchema(searchPlanSchemaJSON)
)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// decodeStructured validates model output against schema and decodes it into
// out. Anything short of a fully valid document is an ErrAIResponseInvalid.
func decodeStructured(text string, schema *gojsonschema.Schema, out any) error {
	doc, ok := extractJSONObject(text)
	if !ok {
		return fmt.Errorf("%w: no JSON object in model output", ErrAIResponseInvalid)
	}

	res, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAIResponseInvalid, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: schema validation failed: %s", ErrAIResponseInvalid, strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("%w: %v", ErrAIResponseInvalid, err)
	}
	return nil
}

// extractJSONObject strips markdown fences and surrounding chatter that
// models like to wrap JSON answers in.
func extractJSONObject(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
	}
	if gjson.Valid(s) && gjson.Parse(s).IsObject() {
		return s, true
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	s = s[start : end+1]
	if !gjson.Valid(s) {
		return "", false
	}
	return s, true
}
