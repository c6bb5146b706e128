package analysisinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/learning"
	"github.com/skilllens/skilllens/pkg/kernel"
)

type PostgresAnalysisRepository struct {
	db *sqlx.DB
}

func NewPostgresAnalysisRepository(db *sqlx.DB) analysis.Repository {
	return &PostgresAnalysisRepository{db: db}
}

// Save inserts a new analysis record
func (r *PostgresAnalysisRepository) Save(ctx context.Context, record *analysis.Record) error {
	recommendations, err := json.Marshal(record.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations for analysis %s: %w", record.ID, err)
	}

	query := `
		INSERT INTO analyses (
			id, user_id, job_description, resume_skills, job_skills,
			matched_skills, missing_skills, match_percentage,
			similarity_score, recommendations, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.JobDescription,
		pq.Array(record.ResumeSkills),
		pq.Array(record.JobSkills),
		pq.Array(record.MatchedSkills),
		pq.Array(record.MissingSkills),
		record.MatchPercentage,
		record.SimilarityScore,
		recommendations,
		record.CreatedAt,
	)

	return err
}

// ListByUser retrieves a user's analyses, newest first
func (r *PostgresAnalysisRepository) ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]analysis.Record, error) {
	query := `
		SELECT id, user_id, job_description, resume_skills, job_skills,
			matched_skills, missing_skills, match_percentage,
			similarity_score, recommendations, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []analysis.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// GetByID retrieves a single analysis scoped to its owner
func (r *PostgresAnalysisRepository) GetByID(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) (*analysis.Record, error) {
	query := `
		SELECT id, user_id, job_description, resume_skills, job_skills,
			matched_skills, missing_skills, match_percentage,
			similarity_score, recommendations, created_at
		FROM analyses
		WHERE id = $1 AND user_id = $2
	`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, analysis.ErrAnalysisNotFound()
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a single analysis scoped to its owner
func (r *PostgresAnalysisRepository) Delete(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) error {
	query := `DELETE FROM analyses WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return analysis.ErrAnalysisNotFound()
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*analysis.Record, error) {
	var record analysis.Record
	var resumeSkills, jobSkills, matchedSkills, missingSkills pq.StringArray
	var recommendations []byte

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.JobDescription,
		&resumeSkills,
		&jobSkills,
		&matchedSkills,
		&missingSkills,
		&record.MatchPercentage,
		&record.SimilarityScore,
		&recommendations,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ResumeSkills = resumeSkills
	record.JobSkills = jobSkills
	record.MatchedSkills = matchedSkills
	record.MissingSkills = missingSkills

	if len(recommendations) > 0 {
		var recs []learning.Recommendation
		if err := json.Unmarshal(recommendations, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations for analysis %s: %w", record.ID, err)
		}
		record.Recommendations = recs
	}

	return &record, nil
}
