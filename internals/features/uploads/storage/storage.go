// Package storage persists uploaded images to local disk, Alibaba OSS or an
// S3-compatible bucket, selected by STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"clubolimpo_backend/internals/configs"
)

// Object is what a driver reports back after a successful write.
type Object struct {
	FileName string
	Key      string
	URL      string
}

// Storage writes one image under dir (e.g. "sponsors/logo").
type Storage interface {
	Put(ctx context.Context, dir, ext string, data []byte, contentType string) (*Object, error)
	Driver() string
}

// New picks the driver named in cfg.Storage.Driver.
func New(ctx context.Context, cfg *configs.Config, log logrus.FieldLogger) (Storage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", "local":
		log.WithField("dir", cfg.Storage.UploadDir).Info("📁 storage: local disk")
		return NewLocalStorage(cfg.Storage.UploadDir, cfg.PublicBaseURL, cfg.Storage.PublicPath)
	case "oss":
		log.WithField("bucket", cfg.Storage.OSSBucket).Info("☁️ storage: aliyun oss")
		return NewOSSStorage(cfg.Storage)
	case "s3":
		log.WithField("bucket", cfg.Storage.S3Bucket).Info("☁️ storage: s3")
		return NewS3Storage(ctx, cfg.Storage)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func joinKey(dir, name string) string {
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
