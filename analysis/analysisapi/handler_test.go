package analysisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllens/skilllens/account/accountauth"
	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/analysis/analysissrv"
	"github.com/skilllens/skilllens/pkg/errx"
	"github.com/skilllens/skilllens/pkg/kernel"
	"github.com/skilllens/skilllens/skills"
)

type stubRepo struct {
	records []analysis.Record
}

func (s *stubRepo) Save(_ context.Context, record *analysis.Record) error {
	s.records = append(s.records, *record)
	return nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID kernel.UserID, limit int) ([]analysis.Record, error) {
	out := []analysis.Record{}
	for _, r := range s.records {
		if r.UserID == userID && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id kernel.AnalysisID, userID kernel.UserID) (*analysis.Record, error) {
	for _, r := range s.records {
		if r.ID == id && r.UserID == userID {
			return &r, nil
		}
	}
	return nil, analysis.ErrAnalysisNotFound()
}

func (s *stubRepo) Delete(_ context.Context, id kernel.AnalysisID, userID kernel.UserID) error {
	for i, r := range s.records {
		if r.ID == id && r.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return analysis.ErrAnalysisNotFound()
}

func newTestApp(repo analysis.Repository) (*fiber.App, *accountauth.TokenService) {
	extractor := skills.NewExtractor(skills.DefaultVocabulary(), nil)
	service := analysissrv.NewService(extractor, repo, nil, nil)
	handlers := NewHandlers(service, "1.0.0")

	tokens := accountauth.NewTokenService("test-secret", time.Hour, "skilllens-test")
	middleware := accountauth.NewMiddleware(tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	RegisterRoutes(app, handlers, middleware)

	return app, tokens
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestRoot(t *testing.T) {
	app, _ := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["message"])
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestExtractSkills(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, map[string]string{
		"text": "We use Python and React on AWS with SQL databases",
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/extract-skills", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out analysis.ExtractSkillsResponse
	decodeJSON(t, resp, &out)
	assert.True(t, out.Success)
	assert.Equal(t, []string{"aws", "python", "react", "sql"}, out.Skills)
	assert.Equal(t, 4, out.Count)
}

func TestExtractSkillsMissingText(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, map[string]string{}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/extract-skills", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeMissingFile(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, map[string]string{
		"job_description": "Python developer wanted",
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]any
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Resume file is required", out["message"])
}

func TestAnalyzeMissingJobDescription(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, nil, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]any
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Job description is required", out["message"])
}

func TestAnalyzeUnsupportedFileType(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, map[string]string{
		"job_description": "Python developer wanted",
	}, "resume", "resume.txt", []byte("plain text resume"))

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeCorruptDocx(t *testing.T) {
	app, _ := newTestApp(nil)

	body, contentType := multipartBody(t, map[string]string{
		"job_description": "Python developer wanted",
	}, "resume", "resume.docx", []byte("not a zip archive"))

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryRequiresAuth(t *testing.T) {
	app, _ := newTestApp(&stubRepo{})

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/analyses/"},
		{http.MethodGet, "/api/analyses/some-id"},
		{http.MethodDelete, "/api/analyses/some-id"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestHistoryList(t *testing.T) {
	userID := kernel.NewUserID()
	repo := &stubRepo{records: []analysis.Record{
		{ID: kernel.NewAnalysisID(), UserID: userID, JobDescription: "Python role"},
		{ID: kernel.NewAnalysisID(), UserID: kernel.NewUserID(), JobDescription: "Someone else's"},
	}}
	app, tokens := newTestApp(repo)

	token, err := tokens.GenerateToken(userID, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out analysis.ListRecordsResponse
	decodeJSON(t, resp, &out)
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Analyses, 1)
	assert.Equal(t, "Python role", out.Analyses[0].JobDescription)
}

func TestHistoryGetAndDelete(t *testing.T) {
	userID := kernel.NewUserID()
	recordID := kernel.NewAnalysisID()
	repo := &stubRepo{records: []analysis.Record{
		{ID: recordID, UserID: userID, JobDescription: "Python role"},
	}}
	app, tokens := newTestApp(repo)

	token, err := tokens.GenerateToken(userID, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+string(recordID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/analyses/"+string(recordID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/analyses/"+string(recordID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistoryOwnerScoped(t *testing.T) {
	ownerID := kernel.NewUserID()
	recordID := kernel.NewAnalysisID()
	repo := &stubRepo{records: []analysis.Record{
		{ID: recordID, UserID: ownerID, JobDescription: "Python role"},
	}}
	app, tokens := newTestApp(repo)

	otherToken, err := tokens.GenerateToken(kernel.NewUserID(), "other@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+string(recordID), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
