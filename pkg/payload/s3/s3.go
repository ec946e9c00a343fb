// Package s3 provides a payload source backed by an Amazon S3 (or
// S3-compatible) bucket.
package s3

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"

	"github.com/xmi-schema/xmi-go/internal/util"
)

// fetchRetries bounds transient-failure retries per object.
const fetchRetries = 3

// S3Source loads payloads from an S3 bucket. Objects are cached after the
// first fetch, and concurrent fetches of the same key are collapsed into one
// request.
type S3Source struct {
	bucket string
	client *s3.Client

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewS3SourceWithClient creates an S3Source on an existing s3.Client, for
// callers that already hold a preconfigured AWS client.
func NewS3SourceWithClient(bucket string, client *s3.Client) *S3Source {
	return &S3Source{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// NewS3SourceParams configures a new S3Source.
//
// Bucket names the S3 bucket. Endpoint overrides the S3 endpoint, which is
// how S3-compatible storage like MinIO is reached. Region names the AWS
// region. AccessKey and SecretKey provide static credentials.
type NewS3SourceParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Source creates an S3Source with its own client built from static
// credentials and the given endpoint/region.
func NewS3Source(ctx context.Context, params NewS3SourceParams) (*S3Source, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)

	return &S3Source{
		bucket: params.Bucket,
		client: client,
		cache:  make(map[string][]byte),
	}, nil
}

// Fetch retrieves the object at the given key from the configured bucket.
func (s *S3Source) Fetch(ctx context.Context, path string) ([]byte, error) {
	s.cacheMu.RLock()
	if cached, ok := s.cache[path]; ok {
		s.cacheMu.RUnlock()
		return cached, nil
	}
	s.cacheMu.RUnlock()

	result, err, _ := s.group.Do(path, func() (any, error) {
		s.cacheMu.RLock()
		if cached, ok := s.cache[path]; ok {
			s.cacheMu.RUnlock()
			return cached, nil
		}
		s.cacheMu.RUnlock()

		data, err := util.RetryWithContext(ctx, fetchRetries, func(ctx context.Context) ([]byte, error) {
			out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(path),
			})
			if err != nil {
				return nil, err
			}
			defer out.Body.Close()

			buf := new(bytes.Buffer)
			if _, err := io.Copy(buf, out.Body); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
		if err != nil {
			return nil, err
		}

		s.cacheMu.Lock()
		s.cache[path] = data
		s.cacheMu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
