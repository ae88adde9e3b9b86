package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage writes under Root/<dir>/ and serves through PublicPath.
type LocalStorage struct {
	Root       string
	BaseURL    string
	PublicPath string
	Now        func() time.Time
}

func NewLocalStorage(root, baseURL, publicPath string) (*LocalStorage, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{
		Root:       root,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		PublicPath: "/" + strings.Trim(publicPath, "/"),
		Now:        time.Now,
	}, nil
}

func (s *LocalStorage) Driver() string { return "local" }

// Put names the file <unix-millis>-<random><ext>.
func (s *LocalStorage) Put(_ context.Context, dir, ext string, data []byte, _ string) (*Object, error) {
	target := filepath.Join(s.Root, filepath.FromSlash(strings.Trim(dir, "/")))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", s.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := os.WriteFile(filepath.Join(target, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	key := joinKey(dir, name)
	return &Object{
		FileName: name,
		Key:      key,
		URL:      s.BaseURL + s.PublicPath + "/" + key,
	}, nil
}
