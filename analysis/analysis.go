package analysis

import (
	"time"

	"github.com/skilllens/skilllens/learning"
	"github.com/skilllens/skilllens/match"
	"github.com/skilllens/skilllens/pkg/kernel"
)

// Summary aggregates the headline counts of an analysis.
type Summary struct {
	TotalJobSkills    int `json:"total_job_skills"`
	TotalResumeSkills int `json:"total_resume_skills"`
	MatchedCount      int `json:"matched_count"`
	MissingCount      int `json:"missing_count"`
}

// Report is the full outcome of analyzing a resume against a job description.
type Report struct {
	AnalysisID      kernel.AnalysisID         `json:"analysis_id,omitempty"`
	ResumeSkills    []string                  `json:"resume_skills"`
	JobSkills       []string                  `json:"job_skills"`
	MatchedSkills   []string                  `json:"matched_skills"`
	MissingSkills   []string                  `json:"missing_skills"`
	MatchPercentage float64                   `json:"match_percentage"`
	SimilarityScore float64                   `json:"similarity_score"`
	Recommendations []learning.Recommendation `json:"recommendations"`
	LearningPath    learning.Path             `json:"learning_path"`
	AdvancedScore   match.AdvancedResult      `json:"advanced_score"`
	Summary         Summary                   `json:"analysis_summary"`
}

// Record is a persisted analysis belonging to an authenticated user.
type Record struct {
	ID              kernel.AnalysisID         `json:"id"`
	UserID          kernel.UserID             `json:"user_id"`
	JobDescription  string                    `json:"job_description"`
	ResumeSkills    []string                  `json:"resume_skills"`
	JobSkills       []string                  `json:"job_skills"`
	MatchedSkills   []string                  `json:"matched_skills"`
	MissingSkills   []string                  `json:"missing_skills"`
	MatchPercentage float64                   `json:"match_percentage"`
	SimilarityScore float64                   `json:"similarity_score"`
	Recommendations []learning.Recommendation `json:"recommendations"`
	CreatedAt       time.Time                 `json:"created_at"`
}
