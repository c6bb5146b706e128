package analysisinfra

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/skilllens/skilllens/analysis"
)

// S3FileStore archives uploaded resumes in an S3 bucket
type S3FileStore struct {
	client *s3.Client
	bucket string
}

// NewS3FileStore creates a new S3-backed file store
func NewS3FileStore(client *s3.Client, bucket string) analysis.FileStore {
	return &S3FileStore{
		client: client,
		bucket: bucket,
	}
}

// Store uploads the file bytes under the given key
func (s *S3FileStore) Store(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("store file %s: %w", key, err)
	}

	return nil
}
