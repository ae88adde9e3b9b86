package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"clubolimpo_backend/internals/configs"
)

// S3API is the subset of the S3 client used here.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	Client     S3API
	Bucket     string
	Region     string
	Endpoint   string
	PathStyle  bool
	PublicBase string
}

func NewS3Storage(ctx context.Context, cfg configs.StorageConfig) (*S3Storage, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("missing S3_BUCKET")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		// static keys (MinIO, R2); otherwise the default credential chain
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	return &S3Storage{
		Client:     client,
		Bucket:     cfg.S3Bucket,
		Region:     cfg.S3Region,
		Endpoint:   cfg.S3Endpoint,
		PathStyle:  cfg.S3UsePathStyle,
		PublicBase: cfg.S3PublicBase,
	}, nil
}

func (s *S3Storage) Driver() string { return "s3" }

func (s *S3Storage) Put(ctx context.Context, dir, ext string, data []byte, contentType string) (*Object, error) {
	name := uuid.NewString() + ext
	key := joinKey(dir, name)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", key, err)
	}
	return &Object{FileName: name, Key: key, URL: s.PublicURL(key)}, nil
}

func (s *S3Storage) PublicURL(key string) string {
	if base := strings.TrimSpace(s.PublicBase); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if s.Endpoint != "" {
		end := strings.TrimRight(s.Endpoint, "/")
		if s.PathStyle {
			return fmt.Sprintf("%s/%s/%s", end, s.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", end, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key)
}
