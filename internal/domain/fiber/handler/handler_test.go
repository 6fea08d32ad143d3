package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/dto"
	"github.com/fadilmartias/cv-optimizer/internal/middleware"
	"github.com/fadilmartias/cv-optimizer/internal/repository"
	"github.com/fadilmartias/cv-optimizer/internal/service"
	"github.com/fadilmartias/cv-optimizer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pdfStub struct{}

func (pdfStub) RenderTextToPDF(ctx context.Context, title, text string) ([]byte, error) {
	return []byte("%PDF-1.4 " + text), nil
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	DevMessage string          `json:"dev_message"`
	Data       json.RawMessage `json:"data"`
	Details    json.RawMessage `json:"details"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithUploadDir(t, t.TempDir())
}

func newTestAppWithUploadDir(t *testing.T, uploadDir string) *fiber.App {
	t.Helper()
	logger, _ := test.NewNullLogger()

	analyzer := service.NewCVAnalyzer(nil, "", time.Second, logger)
	analysis := usecase.NewAnalysisUsecase(analyzer, repository.NewMemoryCVUploadRepository(), pdfStub{}, logger)
	jobs := usecase.NewJobMatchingUsecase(analyzer, logger)

	app := fiber.New()
	NewCVHandler(analysis, jobs, uploadDir).RegisterRoutes(app)
	NewJobHandler(jobs, analysis, dto.AIStatusDTO{Provider: "gemini"}).RegisterRoutes(app)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func uploadRequest(t *testing.T, fileName, content, jobRole string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("cv", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("job_role", jobRole))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/cvs", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(middleware.UserIDHeader, "alice")
	return req
}

func uploadCV(t *testing.T, app *fiber.App) dto.CVUploadDTO {
	t.Helper()
	resp, body := do(t, app, uploadRequest(t, "alice.txt", "Alice\nGo engineer with 5 years of experience", "Backend Engineer"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var upload dto.CVUploadDTO
	require.NoError(t, json.Unmarshal(body.Data, &upload))
	return upload
}

func authed(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(middleware.UserIDHeader, "alice")
	return req
}

func TestUploadAnalysesWithFallback(t *testing.T) {
	app := newTestApp(t)

	upload := uploadCV(t, app)

	assert.Equal(t, "alice.txt", upload.FileName)
	assert.Equal(t, "Backend Engineer", upload.JobRole)
	assert.Equal(t, 75, upload.ATSScore)
	assert.Equal(t, 70, upload.JobMatchPercentage)
	assert.True(t, upload.AnalysisDegraded)
	require.NotNil(t, upload.Analysis)
	assert.Len(t, upload.Analysis.MissingSections, 3)
}

func TestUploadRequiresUserHeader(t *testing.T) {
	app := newTestApp(t)
	req := uploadRequest(t, "alice.txt", "cv", "")
	req.Header.Del(middleware.UserIDHeader)

	resp, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, uploadRequest(t, "alice.docx", "cv", ""))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Contains(t, string(body.Details), "must be .pdf or .txt")
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, uploadRequest(t, "empty.txt", "   ", ""))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Contains(t, body.DevMessage, "no text found in file")
}

func TestUploadLeavesNoFilesBehind(t *testing.T) {
	uploadDir := t.TempDir()
	app := newTestAppWithUploadDir(t, uploadDir)

	for i := 0; i < 3; i++ {
		uploadCV(t, app)
	}
	resp, _ := do(t, app, uploadRequest(t, "empty.txt", "   ", ""))
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListReturnsPagination(t *testing.T) {
	app := newTestApp(t)
	uploadCV(t, app)
	uploadCV(t, app)

	resp, err := app.Test(authed(http.MethodGet, "/cvs?page=1&page_size=1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data       []dto.CVUploadDTO `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"total_items"`
			HasMore    bool  `json:"has_more"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.EqualValues(t, 2, body.Pagination.TotalItems)
	assert.True(t, body.Pagination.HasMore)
}

func TestListRejectsOversizedPage(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, authed(http.MethodGet, "/cvs?page_size=500", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body.Details), "must be at most 50")
}

func TestOptimizedView(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, body := do(t, app, authed(http.MethodGet, "/cvs/"+upload.ID.String()+"/optimized", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view usecase.OptimizedView
	require.NoError(t, json.Unmarshal(body.Data, &view))
	assert.True(t, view.Analysed)
	assert.Contains(t, view.OptimizedContent, "Note: This is a sample optimized CV")
	assert.Equal(t, 70, view.MatchPercentage)
}

func TestOptimizedViewInvalidID(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, authed(http.MethodGet, "/cvs/not-a-uuid/optimized", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body.Details), "must be a valid UUID")
}

func TestOptimizedViewOtherUser(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	req := httptest.NewRequest(http.MethodGet, "/cvs/"+upload.ID.String()+"/optimized", nil)
	req.Header.Set(middleware.UserIDHeader, "bob")
	resp, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadOptimized(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, err := app.Test(authed(http.MethodGet, "/cvs/"+upload.ID.String()+"/optimized/download", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="AI_Optimized_alice_CV.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-1.4")))
}

func TestRegenerate(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	req := authed(http.MethodPost, "/cvs/"+upload.ID.String()+"/regenerate", strings.NewReader(`{"job_description":"Staff SRE"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result dto.RegenerateResultDTO
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, upload.ID, result.ID)
	assert.Equal(t, 75, result.ATSScore)
	assert.Equal(t, 70, result.MatchPercentage)
	assert.True(t, result.Degraded)
}

func TestRegenerateWithoutBody(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, _ := do(t, app, authed(http.MethodPost, "/cvs/"+upload.ID.String()+"/regenerate", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMatchingJobsSplitsLimit(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, body := do(t, app, authed(http.MethodGet, "/cvs/"+upload.ID.String()+"/jobs?limit=20", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Jobs       []json.RawMessage `json:"jobs"`
		TotalFound int               `json:"total_found"`
		Degraded   bool              `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Len(t, result.Jobs, 18)
	assert.Equal(t, 18, result.TotalFound)
	assert.True(t, result.Degraded)
}

func TestMatchingJobsExplicitTitle(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, body := do(t, app, authed(http.MethodGet, "/cvs/"+upload.ID.String()+"/jobs?job_title=SRE&limit=3&location=Berlin", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Jobs []struct {
			Title    string `json:"title"`
			Location string `json:"location"`
		} `json:"jobs"`
		SearchSuggestions struct {
			JobTitles []string `json:"job_titles"`
		} `json:"search_suggestions"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	require.Len(t, result.Jobs, 3)
	assert.Equal(t, "Berlin", result.Jobs[0].Location)
	assert.Equal(t, []string{"SRE"}, result.SearchSuggestions.JobTitles)
}

func TestMatchingJobsLimitBounds(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	resp, _ := do(t, app, authed(http.MethodGet, "/cvs/"+upload.ID.String()+"/jobs?limit=51", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGuide(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, authed(http.MethodGet, "/jobs/guide?title=Go%20Developer&company=Acme&portal=LinkedIn", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var guide struct {
		Guide      string   `json:"guide"`
		PortalTips []string `json:"portal_tips"`
		Checklist  []string `json:"checklist"`
		Degraded   bool     `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &guide))
	assert.Contains(t, guide.Guide, "Go Developer")
	assert.NotEmpty(t, guide.PortalTips)
	assert.Len(t, guide.Checklist, 5)
	assert.True(t, guide.Degraded)
}

func TestGuideRequiresTitle(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, authed(http.MethodGet, "/jobs/guide", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body.Details), "title")
}

func TestCustomSearch(t *testing.T) {
	app := newTestApp(t)
	upload := uploadCV(t, app)

	payload := `{"job_title":"Data Engineer","location":"Jakarta","skills":"Go, SQL","cv_id":"` + upload.ID.String() + `"}`
	req := authed(http.MethodPost, "/jobs/search", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Plan struct {
			Skills      []string `json:"skills"`
			SalaryRange string   `json:"salary_range"`
		} `json:"search_data"`
		Jobs       []json.RawMessage `json:"jobs"`
		TotalFound int               `json:"total_found"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, []string{"Go", "SQL"}, result.Plan.Skills)
	assert.Equal(t, "Competitive", result.Plan.SalaryRange)
	assert.Len(t, result.Jobs, 8)
	assert.Equal(t, 8, result.TotalFound)
}

func TestCustomSearchUnknownCV(t *testing.T) {
	app := newTestApp(t)

	req := authed(http.MethodPost, "/jobs/search", strings.NewReader(`{"job_title":"Data Engineer","cv_id":"00000000-0000-0000-0000-000000000000"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAIStatus(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/ai/status", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status dto.AIStatusDTO
	require.NoError(t, json.Unmarshal(body.Data, &status))
	assert.Equal(t, "gemini", status.Provider)
	assert.False(t, status.Enabled)
}
