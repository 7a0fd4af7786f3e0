package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	sc "github.com/dmitrijs2005/tokenregister/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams over the AWS SDK so tests never reach a real S3 endpoint.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// SnapshotURLValidity bounds how long a snapshot download link works.
const SnapshotURLValidity = 15 * time.Minute

// SnapshotService writes JSON exports of the registry to S3-compatible
// storage and hands out presigned download links.
type SnapshotService struct {
	registry *RegistryService
	config   *sc.Config
	now      func() time.Time
}

func NewSnapshotService(registry *RegistryService, cfg *sc.Config) *SnapshotService {
	return &SnapshotService{registry: registry, config: cfg, now: time.Now}
}

// GetRandomStorageKey returns a date-partitioned unique object key.
func GetRandomStorageKey(now time.Time) string {
	return fmt.Sprintf("snapshots/%d/%d/%d/%v.json", now.Year(), now.Month(), now.Day(), uuid.New())
}

func (s *SnapshotService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Snapshot uploads the current registry state and returns the object key
// together with a presigned GET URL.
func (s *SnapshotService) Snapshot(ctx context.Context, operator string) (string, string, error) {
	if s.config.S3Bucket == "" {
		return "", "", common.ErrSnapshotStoreNotDefined
	}

	now := s.now()
	snap, err := s.registry.snapshot(ctx, operator, now)
	if err != nil {
		return "", "", err
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode snapshot: %w", err)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", "", fmt.Errorf("upload snapshot: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(SnapshotURLValidity))
	if err != nil {
		return "", "", fmt.Errorf("presign snapshot: %w", err)
	}

	return key, req.URL, nil
}
