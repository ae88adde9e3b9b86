package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/features/uploads/storage"
)

type recordingStore struct {
	puts []string
	data []byte
}

func (r *recordingStore) Driver() string { return "memory" }

func (r *recordingStore) Put(_ context.Context, dir, ext string, data []byte, _ string) (*storage.Object, error) {
	r.puts = append(r.puts, dir+"/x"+ext)
	r.data = data
	return &storage.Object{FileName: "x" + ext, Key: dir + "/x" + ext, URL: "http://cdn/" + dir + "/x" + ext}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// fileHeader round-trips data through a real multipart form.
func fileHeader(t *testing.T, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="upload.bin"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestResolveDir(t *testing.T) {
	dir, err := ResolveDir("players", "")
	require.NoError(t, err)
	assert.Equal(t, "players", dir)

	dir, err = ResolveDir("Sponsors", "Logo")
	require.NoError(t, err)
	assert.Equal(t, "sponsors/logo", dir)

	_, err = ResolveDir("videos", "")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ResolveDir("teams", "purple")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestNormalizeMime(t *testing.T) {
	assert.Equal(t, "image/jpeg", NormalizeMime("image/JPG"))
	assert.Equal(t, "image/png", NormalizeMime(" image/png; charset=binary"))
}

func TestSaveStoresValidImage(t *testing.T) {
	store := &recordingStore{}
	svc := NewUploadService(store, 0)

	obj, err := svc.Save(context.Background(), "news", fileHeader(t, "image/png", pngBytes(t, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/news/x.png", obj.URL)
	assert.Equal(t, []string{"news/x.png"}, store.puts)
}

func TestSaveRejectsWithoutWriting(t *testing.T) {
	cases := []struct {
		name  string
		ctype string
		data  []byte
		want  error
	}{
		{"declared pdf", "application/pdf", []byte("%PDF-1.4"), ErrMimeNotAllowed},
		{"spoofed png", "image/png", []byte("just some text, not an image"), ErrMimeNotAllowed},
		{"too large", "image/png", make([]byte, MaxUploadSize+1), ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &recordingStore{}
			svc := NewUploadService(store, 0)
			_, err := svc.Save(context.Background(), "players", fileHeader(t, tc.ctype, tc.data))
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, store.puts)
		})
	}
}

func TestDownscaleWideImages(t *testing.T) {
	store := &recordingStore{}
	svc := NewUploadService(store, 10)

	_, err := svc.Save(context.Background(), "players", fileHeader(t, "image/png", pngBytes(t, 40, 20)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(store.data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}
