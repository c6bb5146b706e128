package analysissrv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/pkg/errx"
	"github.com/skilllens/skilllens/pkg/kernel"
	"github.com/skilllens/skilllens/skills"
)

const sampleResume = "Senior engineer with five years of Python and SQL experience, " +
	"building services on AWS and frontends in React."

const sampleJob = "Looking for a Python developer with React, AWS and Docker experience."

type memoryRepo struct {
	saved   []*analysis.Record
	saveErr error
}

func (m *memoryRepo) Save(_ context.Context, record *analysis.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID kernel.UserID, limit int) ([]analysis.Record, error) {
	records := []analysis.Record{}
	for _, r := range m.saved {
		if r.UserID == userID && len(records) < limit {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id kernel.AnalysisID, userID kernel.UserID) (*analysis.Record, error) {
	for _, r := range m.saved {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return nil, analysis.ErrAnalysisNotFound()
}

func (m *memoryRepo) Delete(_ context.Context, id kernel.AnalysisID, userID kernel.UserID) error {
	for i, r := range m.saved {
		if r.ID == id && r.UserID == userID {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return analysis.ErrAnalysisNotFound()
}

type memoryCache struct {
	entries map[string]*analysis.Report
	getErr  error
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*analysis.Report{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (*analysis.Report, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	report, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	m.hits++
	return report, nil
}

func (m *memoryCache) Set(_ context.Context, key string, report *analysis.Report) error {
	m.entries[key] = report
	return nil
}

func newTestService(repo analysis.Repository, cache analysis.ResultCache) *Service {
	extractor := skills.NewExtractor(skills.DefaultVocabulary(), nil)
	return NewService(extractor, repo, cache, nil)
}

func TestAnalyzeDocument(t *testing.T) {
	svc := newTestService(nil, nil)

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)

	assert.NotEmpty(t, report.AnalysisID)
	assert.Contains(t, report.ResumeSkills, "python")
	assert.Contains(t, report.JobSkills, "docker")
	assert.Contains(t, report.MatchedSkills, "python")
	assert.Contains(t, report.MissingSkills, "docker")
	assert.GreaterOrEqual(t, report.MatchPercentage, 0.0)
	assert.LessOrEqual(t, report.MatchPercentage, 100.0)
	assert.Greater(t, report.SimilarityScore, 0.0)

	assert.Equal(t, len(report.JobSkills), report.Summary.TotalJobSkills)
	assert.Equal(t, len(report.ResumeSkills), report.Summary.TotalResumeSkills)
	assert.Equal(t, len(report.MatchedSkills), report.Summary.MatchedCount)
	assert.Equal(t, len(report.MissingSkills), report.Summary.MissingCount)

	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, len(report.MissingSkills), len(report.Recommendations))
	assert.Equal(t, len(report.MissingSkills), report.LearningPath.TotalSkills)
}

func TestAnalyzeDocumentShortText(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.AnalyzeDocument(context.Background(), "too short", sampleJob)
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 400, e.HTTPStatus)
}

func TestAnalyzeDocumentTrimsBeforeLengthCheck(t *testing.T) {
	svc := newTestService(nil, nil)

	padded := strings.Repeat(" ", 60) + "short" + strings.Repeat(" ", 60)
	_, err := svc.AnalyzeDocument(context.Background(), padded, sampleJob)
	assert.Error(t, err)
}

func TestAnalyzeDocumentUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(nil, cache)

	first, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)
	require.Len(t, cache.entries, 1)

	second, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.AnalysisID, second.AnalysisID)
}

func TestAnalyzeDocumentCacheFailureTolerated(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := newTestService(nil, cache)

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestAnalyzeUploadValidation(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		upload Upload
		job    string
	}{
		{
			name:   "empty file",
			upload: Upload{Filename: "resume.pdf"},
			job:    sampleJob,
		},
		{
			name:   "oversized file",
			upload: Upload{Filename: "resume.pdf", Data: make([]byte, MaxUploadSize+1)},
			job:    sampleJob,
		},
		{
			name:   "missing job description",
			upload: Upload{Filename: "resume.pdf", Data: []byte("%PDF-1.4")},
			job:    "   ",
		},
		{
			name:   "unsupported extension",
			upload: Upload{Filename: "resume.txt", Data: []byte("plain text")},
			job:    sampleJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AnalyzeUpload(ctx, tt.upload, tt.job, "")
			require.Error(t, err)

			var e *errx.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, 400, e.HTTPStatus)
		})
	}
}

func TestAnalyzeUploadCorruptFile(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.AnalyzeUpload(context.Background(), Upload{
		Filename: "resume.docx",
		Data:     []byte("not a real docx"),
	}, sampleJob, "")
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 400, e.HTTPStatus)
}

func TestPersistRecordForAuthenticatedUser(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo, nil)
	userID := kernel.NewUserID()

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)

	svc.persistRecord(context.Background(), report, sampleJob, userID)

	require.Len(t, repo.saved, 1)
	record := repo.saved[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, sampleJob, record.JobDescription)
	assert.Equal(t, report.MatchedSkills, record.MatchedSkills)
}

func TestPersistRecordMintsFreshID(t *testing.T) {
	cache := newMemoryCache()
	repo := &memoryRepo{}
	svc := newTestService(repo, cache)
	ctx := context.Background()

	// Two users analyzing identical inputs share one cached report. Their
	// history records must still get distinct primary keys.
	for _, userID := range []kernel.UserID{kernel.NewUserID(), kernel.NewUserID()} {
		report, err := svc.AnalyzeDocument(ctx, sampleResume, sampleJob)
		require.NoError(t, err)
		svc.persistRecord(ctx, report, sampleJob, userID)
	}

	assert.Equal(t, 1, cache.hits)
	require.Len(t, repo.saved, 2)
	assert.NotEqual(t, repo.saved[0].ID, repo.saved[1].ID)
}

func TestPersistRecordSkippedForAnonymous(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo, nil)

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)

	svc.persistRecord(context.Background(), report, sampleJob, "")
	assert.Empty(t, repo.saved)
}

func TestPersistRecordFailureDoesNotPropagate(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("db down")}
	svc := newTestService(repo, nil)

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)

	// Must not panic or error; failures are logged only.
	svc.persistRecord(context.Background(), report, sampleJob, kernel.NewUserID())
}

func TestHistoryWithoutRepository(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetHistory(context.Background(), kernel.NewUserID(), 50)
	assert.Error(t, err)

	err = svc.DeleteRecord(context.Background(), kernel.NewAnalysisID(), kernel.NewUserID())
	assert.Error(t, err)
}

func TestHistoryRoundTrip(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo, nil)
	userID := kernel.NewUserID()

	report, err := svc.AnalyzeDocument(context.Background(), sampleResume, sampleJob)
	require.NoError(t, err)
	svc.persistRecord(context.Background(), report, sampleJob, userID)

	records, err := svc.GetHistory(context.Background(), userID, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record, err := svc.GetRecord(context.Background(), records[0].ID, userID)
	require.NoError(t, err)
	assert.Equal(t, records[0].ID, record.ID)

	// Another user cannot see or delete it.
	_, err = svc.GetRecord(context.Background(), records[0].ID, kernel.NewUserID())
	assert.Error(t, err)

	require.NoError(t, svc.DeleteRecord(context.Background(), records[0].ID, userID))
	assert.Empty(t, repo.saved)
}

func TestResultKeyDistinguishesInputs(t *testing.T) {
	// The separator prevents "ab"+"c" colliding with "a"+"bc".
	assert.NotEqual(t, resultKey("ab", "c"), resultKey("a", "bc"))
	assert.Equal(t, resultKey("a", "b"), resultKey("a", "b"))
}
