package controller_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/features/uploads/service"
	"clubolimpo_backend/internals/testutil"
)

func uploadRequest(t *testing.T, env *testutil.Env, path, contentType string, data []byte, token string) testutil.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="foto.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return env.Send(t, req)
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func filesUnder(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	_ = filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			out = append(out, p)
		}
		return nil
	})
	return out
}

func TestUploadImage(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := uploadRequest(t, env, "/api/upload/sponsors/logo", "image/png", tinyPNG(t), token)
	require.Equal(t, 200, res.Status, res.Body)
	url, _ := res.Body["imageUrl"].(string)
	name, _ := res.Body["fileName"].(string)
	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/sponsors/logo/"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err := os.Stat(filepath.Join(env.Config.Storage.UploadDir, "sponsors", "logo", name))
	require.NoError(t, err)

	served := env.Send(t, httptest.NewRequest("GET", "/uploads/sponsors/logo/"+name, nil))
	assert.Equal(t, 200, served.Status)
}

func TestUploadRejections(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := uploadRequest(t, env, "/api/upload/players", "image/png", tinyPNG(t), "")
	assert.Equal(t, 401, res.Status)

	res = uploadRequest(t, env, "/api/upload/videos", "image/png", tinyPNG(t), token)
	assert.Equal(t, 400, res.Status)

	res = uploadRequest(t, env, "/api/upload/teams/purple", "image/png", tinyPNG(t), token)
	assert.Equal(t, 400, res.Status)

	res = uploadRequest(t, env, "/api/upload/players", "text/plain", []byte("hola"), token)
	assert.Equal(t, 400, res.Status)

	res = uploadRequest(t, env, "/api/upload/players", "image/png", make([]byte, service.MaxUploadSize+1), token)
	assert.Equal(t, 413, res.Status)

	assert.Empty(t, filesUnder(t, env.Config.Storage.UploadDir))
}
