package analysissrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/internal/docconv"
	"github.com/skilllens/skilllens/learning"
	"github.com/skilllens/skilllens/match"
	"github.com/skilllens/skilllens/pkg/kernel"
	"github.com/skilllens/skilllens/pkg/logx"
	"github.com/skilllens/skilllens/skills"
)

const (
	// MaxUploadSize caps accepted resume files at 10MB.
	MaxUploadSize = 10 << 20

	// minTextLength is the minimum extracted resume length worth analyzing.
	minTextLength = 50
)

// Upload carries a resume file as received from the HTTP layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service orchestrates the analysis pipeline: decode, extract, match,
// recommend. The repository, cache and file store are all optional; a nil
// port disables that concern without affecting the analysis itself.
type Service struct {
	extractor *skills.Extractor
	repo      analysis.Repository
	cache     analysis.ResultCache
	files     analysis.FileStore
}

func NewService(extractor *skills.Extractor, repo analysis.Repository, cache analysis.ResultCache, files analysis.FileStore) *Service {
	return &Service{
		extractor: extractor,
		repo:      repo,
		cache:     cache,
		files:     files,
	}
}

// ExtractSkills runs skill extraction over free-form text.
func (s *Service) ExtractSkills(ctx context.Context, text string) []string {
	return s.extractor.Extract(ctx, text)
}

// AnalyzeUpload validates and decodes an uploaded resume, then analyzes it
// against the job description. userID is empty for anonymous callers.
func (s *Service) AnalyzeUpload(ctx context.Context, upload Upload, jobDescription string, userID kernel.UserID) (*analysis.Report, error) {
	if len(upload.Data) == 0 {
		return nil, analysis.ErrFileRequired()
	}
	if len(upload.Data) > MaxUploadSize {
		return nil, analysis.ErrFileTooLarge().WithDetail("size", fmt.Sprintf("%d", len(upload.Data)))
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, analysis.ErrJobDescriptionRequired()
	}

	fileType := docconv.DetermineFileType(upload.Filename, upload.ContentType)
	if fileType == "" {
		return nil, analysis.ErrUnsupportedFileType().WithDetail("filename", upload.Filename)
	}

	resumeText, err := docconv.ExtractText(fileType, upload.Data)
	if err != nil {
		return nil, analysis.ErrRegistry.NewWithCause(analysis.CodeDecodeFailed, err).
			WithDetail("error", err.Error())
	}

	s.archiveUpload(ctx, upload, fileType)

	report, err := s.AnalyzeDocument(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, err
	}

	s.persistRecord(ctx, report, jobDescription, userID)

	return report, nil
}

// AnalyzeDocument runs the core pipeline over already-extracted text.
func (s *Service) AnalyzeDocument(ctx context.Context, resumeText, jobDescription string) (*analysis.Report, error) {
	trimmed := strings.TrimSpace(resumeText)
	if len(trimmed) < minTextLength {
		return nil, analysis.ErrTextTooShort().
			WithDetail("length", fmt.Sprintf("%d", len(trimmed)))
	}

	cacheKey := resultKey(trimmed, jobDescription)
	if cached := s.cachedReport(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	resumeSkills := s.extractor.Extract(ctx, trimmed)
	jobSkills := s.extractor.Extract(ctx, jobDescription)

	matchResult := match.Match(resumeSkills, jobSkills)
	similarity := match.Similarity(trimmed, jobDescription)
	advanced := match.AdvancedScore(resumeSkills, jobSkills, trimmed, jobDescription)

	report := &analysis.Report{
		AnalysisID:      kernel.NewAnalysisID(),
		ResumeSkills:    resumeSkills,
		JobSkills:       jobSkills,
		MatchedSkills:   matchResult.MatchedSkills,
		MissingSkills:   matchResult.MissingSkills,
		MatchPercentage: matchResult.MatchPercentage,
		SimilarityScore: similarity,
		Recommendations: learning.Recommend(matchResult.MissingSkills),
		LearningPath:    learning.BuildPath(matchResult.MissingSkills),
		AdvancedScore:   advanced,
		Summary: analysis.Summary{
			TotalJobSkills:    len(jobSkills),
			TotalResumeSkills: len(resumeSkills),
			MatchedCount:      matchResult.MatchCount,
			MissingCount:      matchResult.MissingCount,
		},
	}

	s.cacheReport(ctx, cacheKey, report)

	return report, nil
}

// GetHistory lists the newest analyses of a user, capped at limit.
func (s *Service) GetHistory(ctx context.Context, userID kernel.UserID, limit int) ([]analysis.Record, error) {
	if s.repo == nil {
		return nil, analysis.ErrHistoryUnavailable()
	}
	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, analysis.ErrRegistry.NewWithCause(analysis.CodeHistoryUnavailable, err)
	}
	return records, nil
}

// GetRecord fetches a single analysis owned by the user.
func (s *Service) GetRecord(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) (*analysis.Record, error) {
	if s.repo == nil {
		return nil, analysis.ErrHistoryUnavailable()
	}
	return s.repo.GetByID(ctx, id, userID)
}

// DeleteRecord removes a single analysis owned by the user.
func (s *Service) DeleteRecord(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) error {
	if s.repo == nil {
		return analysis.ErrHistoryUnavailable()
	}
	return s.repo.Delete(ctx, id, userID)
}

func (s *Service) cachedReport(ctx context.Context, key string) *analysis.Report {
	if s.cache == nil {
		return nil
	}
	report, err := s.cache.Get(ctx, key)
	if err != nil {
		logx.Warnf("Result cache lookup failed: %v", err)
		return nil
	}
	return report
}

func (s *Service) cacheReport(ctx context.Context, key string, report *analysis.Report) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, report); err != nil {
		logx.Warnf("Result cache write failed: %v", err)
	}
}

// persistRecord saves the analysis for authenticated callers. Storage
// failures are logged and never fail the request. The record gets its own ID:
// a cache hit hands the same report to every caller, and reusing its ID would
// collide on the primary key when two users analyze identical inputs.
func (s *Service) persistRecord(ctx context.Context, report *analysis.Report, jobDescription string, userID kernel.UserID) {
	if s.repo == nil || userID == "" {
		return
	}

	record := &analysis.Record{
		ID:              kernel.NewAnalysisID(),
		UserID:          userID,
		JobDescription:  jobDescription,
		ResumeSkills:    report.ResumeSkills,
		JobSkills:       report.JobSkills,
		MatchedSkills:   report.MatchedSkills,
		MissingSkills:   report.MissingSkills,
		MatchPercentage: report.MatchPercentage,
		SimilarityScore: report.SimilarityScore,
		Recommendations: report.Recommendations,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		logx.Warnf("Failed to save analysis %s: %v", record.ID, err)
	}
}

// archiveUpload stores the raw resume bytes when a file store is configured.
func (s *Service) archiveUpload(ctx context.Context, upload Upload, fileType string) {
	if s.files == nil {
		return
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext == "" {
		ext = "." + fileType
	}
	now := time.Now()
	key := fmt.Sprintf("resumes/%04d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	if err := s.files.Store(ctx, key, upload.Data, upload.ContentType); err != nil {
		logx.Warnf("Failed to archive upload %s: %v", upload.Filename, err)
	}
}

func resultKey(resumeText, jobDescription string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobDescription))
	return hex.EncodeToString(h.Sum(nil))
}
