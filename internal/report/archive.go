package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Archiver keeps a copy of every exported report.
type Archiver interface {
	Archive(ctx context.Context, name string, body []byte, at time.Time) (string, error)
}

// S3API is the subset of the s3 client used here.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type S3Archiver struct {
	client S3API
	bucket string
}

// NewS3Client builds a client from static credentials; a custom endpoint
// (MinIO, localstack) switches to path-style addressing.
func NewS3Client(cfg S3Config) *s3.Client {
	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3Archiver(client S3API, bucket string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket}
}

// ObjectKey is reports/YYYY/MM/<name>-<uuid>.csv.
func ObjectKey(name string, at time.Time) string {
	return fmt.Sprintf("reports/%s/%s-%s.csv", at.Format("2006/01"), name, uuid.NewString())
}

func (a *S3Archiver) Archive(ctx context.Context, name string, body []byte, at time.Time) (string, error) {
	key := ObjectKey(name, at)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("archive report %s: %w", name, err)
	}

	return key, nil
}

// NopArchiver is used when no bucket is configured.
type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, string, []byte, time.Time) (string, error) {
	return "", nil
}

var (
	_ Archiver = (*S3Archiver)(nil)
	_ Archiver = NopArchiver{}
	_ S3API    = (*s3.Client)(nil)
)
