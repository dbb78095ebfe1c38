package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/geeksadmin/internal/filex"
	"github.com/google/uuid"
)

// Sink stores a blob and returns where it went.
type Sink interface {
	Save(ctx context.Context, b Blob) (string, error)
}

// FileSink writes exports into Dir. An existing file is never
// overwritten; a " (n)" suffix is added instead.
type FileSink struct {
	Dir string
}

func (s FileSink) Save(_ context.Context, b Blob) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}
	return filex.WriteFile(dir, filex.FreeName(dir, b.Name), b.Data)
}

// ObjectPutter is the part of *s3.Client used by S3Sink.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Sink uploads exports to a bucket under exports/YYYY/MM/DD/<uuid>/.
type S3Sink struct {
	bucket string
	client ObjectPutter
	now    func() time.Time
}

// NewS3Sink builds an S3 client from opts. Static credentials are used
// when AccessKey is set, otherwise the default AWS credential chain.
func NewS3Sink(ctx context.Context, opts S3Options) (*S3Sink, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3SinkWithClient(opts.Bucket, client), nil
}

func NewS3SinkWithClient(bucket string, client ObjectPutter) *S3Sink {
	return &S3Sink{bucket: bucket, client: client, now: time.Now}
}

func (s *S3Sink) Save(ctx context.Context, b Blob) (string, error) {
	d := s.now()
	key := fmt.Sprintf("exports/%04d/%02d/%02d/%s/%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), b.Name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(b.Data),
		ContentType: aws.String(b.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}
