package storage

import (
	"bytes"   // Upload body
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"io"      // Reading object bodies

	"github.com/aws/aws-sdk-go-v2/aws"              // AWS value helpers
	"github.com/aws/aws-sdk-go-v2/config"           // Credential and region loading
	"github.com/aws/aws-sdk-go-v2/service/s3"       // S3 client
	"github.com/aws/aws-sdk-go-v2/service/s3/types" // S3 error types
)

// S3Store keeps blobs as objects in one bucket
type S3Store struct {
	client *s3.Client // Shared, safe for concurrent use
	bucket string     // Bucket holding every blob
}

// NewS3Store loads AWS credentials from the environment
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Put uploads the blob with its media type
func (s *S3Store) Put(ctx context.Context, key string, blob Blob) error {
	clean, err := CleanPath(key)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),         // Target bucket
		Key:         aws.String(clean),            // Cleaned path
		Body:        bytes.NewReader(blob.Data),   // Seekable, so the SDK can sign it
		ContentType: aws.String(blob.ContentType), // Served back on Get
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// Get downloads the blob at key
func (s *S3Store) Get(ctx context.Context, key string) (*Blob, error) {
	clean, err := CleanPath(key)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, ErrNotFound // Same sentinel as LocalStore
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close() // Release the connection

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return &Blob{Data: data, ContentType: aws.ToString(out.ContentType)}, nil
}

// Delete removes the object. S3 does not report missing keys on delete.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	clean, err := CleanPath(key)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
