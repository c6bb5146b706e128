package analysis

import (
	"context"

	"github.com/skilllens/skilllens/pkg/kernel"
)

// Repository persists analysis records for authenticated users.
type Repository interface {
	Save(ctx context.Context, record *Record) error
	ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]Record, error)
	GetByID(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) (*Record, error)
	Delete(ctx context.Context, id kernel.AnalysisID, userID kernel.UserID) error
}

// ResultCache stores finished reports keyed by input digest.
// Get returns (nil, nil) on a cache miss.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Report, error)
	Set(ctx context.Context, key string, report *Report) error
}

// FileStore archives uploaded resume files.
type FileStore interface {
	Store(ctx context.Context, key string, data []byte, contentType string) error
}
