package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"clubolimpo_backend/internals/features/uploads/storage"
)

// MaxUploadSize is the hard limit for a single image.
const MaxUploadSize int64 = 5 * 1024 * 1024

var (
	ErrUnknownKind    = errors.New("unknown upload kind")
	ErrUnknownType    = errors.New("unknown upload type")
	ErrEmptyFile      = errors.New("empty file")
	ErrTooLarge       = errors.New("file exceeds 5MB")
	ErrMimeNotAllowed = errors.New("mime type not allowed")
)

var allowedMimes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// kinds maps an upload kind to its allowed :type values; nil means no :type.
var kinds = map[string][]string{
	"players":         nil,
	"news":            nil,
	"monthly-players": nil,
	"testimonials":    nil,
	"categories":      nil,
	"history":         {"event", "subsection"},
	"identity":        {"mission", "vision", "values"},
	"sponsors":        {"logo", "black", "white"},
	"teams":           {"original", "white", "black"},
}

// ResolveDir returns the storage subdirectory for kind[/type].
func ResolveDir(kind, typ string) (string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	typ = strings.ToLower(strings.TrimSpace(typ))

	types, ok := kinds[kind]
	if !ok {
		return "", ErrUnknownKind
	}
	if typ == "" {
		return kind, nil
	}
	for _, t := range types {
		if t == typ {
			return kind + "/" + typ, nil
		}
	}
	return "", ErrUnknownType
}

// NormalizeMime lower-cases a Content-Type and drops parameters.
func NormalizeMime(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "image/jpg" || ct == "image/pjpeg" {
		return "image/jpeg"
	}
	return ct
}

type UploadService struct {
	Store    storage.Storage
	MaxWidth int
}

func NewUploadService(store storage.Storage, maxWidth int) *UploadService {
	return &UploadService{Store: store, MaxWidth: maxWidth}
}

// Validate checks size and both the declared and sniffed MIME type, then
// returns the file bytes and the effective MIME. Nothing is written.
func (s *UploadService) Validate(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh == nil || fh.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if fh.Size > MaxUploadSize {
		return nil, "", ErrTooLarge
	}
	declared := NormalizeMime(fh.Header.Get("Content-Type"))
	if _, ok := allowedMimes[declared]; !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrMimeNotAllowed, declared)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, "", ErrTooLarge
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}

	sniffed := NormalizeMime(mimetype.Detect(data).String())
	if _, ok := allowedMimes[sniffed]; !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrMimeNotAllowed, sniffed)
	}
	return data, sniffed, nil
}

// Save validates fh and writes it under dir.
func (s *UploadService) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (*storage.Object, error) {
	data, mime, err := s.Validate(fh)
	if err != nil {
		return nil, err
	}
	data = s.downscale(data, mime)
	return s.Store.Put(ctx, dir, allowedMimes[mime], data, mime)
}

// downscale shrinks JPEG/PNG wider than MaxWidth; on any failure the
// original bytes are kept.
func (s *UploadService) downscale(data []byte, mime string) []byte {
	if s.MaxWidth <= 0 {
		return data
	}
	var format imaging.Format
	switch mime {
	case "image/jpeg":
		format = imaging.JPEG
	case "image/png":
		format = imaging.PNG
	default:
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil || img.Bounds().Dx() <= s.MaxWidth {
		return data
	}
	resized := imaging.Resize(img, s.MaxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return data
	}
	return buf.Bytes()
}
