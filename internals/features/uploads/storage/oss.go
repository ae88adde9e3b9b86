package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"clubolimpo_backend/internals/configs"
)

type OSSStorage struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
}

func NewOSSStorage(cfg configs.StorageConfig) (*OSSStorage, error) {
	if cfg.OSSEndpoint == "" || cfg.OSSAccessKey == "" || cfg.OSSSecretKey == "" || cfg.OSSBucket == "" {
		return nil, fmt.Errorf("missing OSS env (OSS_ENDPOINT / OSS_ACCESS_KEY / OSS_SECRET_KEY / OSS_BUCKET)")
	}
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSStorage{
		Bucket:     bkt,
		Endpoint:   cfg.OSSEndpoint,
		BucketName: cfg.OSSBucket,
		PublicBase: cfg.OSSPublicBase,
	}, nil
}

func (s *OSSStorage) Driver() string { return "oss" }

func (s *OSSStorage) Put(ctx context.Context, dir, ext string, data []byte, contentType string) (*Object, error) {
	name := uuid.NewString() + ext
	key := joinKey(dir, name)

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return nil, fmt.Errorf("oss put %s: %w", key, err)
	}
	return &Object{FileName: name, Key: key, URL: s.PublicURL(key)}, nil
}

// PublicURL prefers OSS_PUBLIC_BASE (CDN) over the bucket endpoint.
func (s *OSSStorage) PublicURL(key string) string {
	if base := strings.TrimSpace(s.PublicBase); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}
