package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoragePut(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "http://localhost:3000/", "uploads/")
	require.NoError(t, err)
	s.Now = func() time.Time { return time.UnixMilli(1700000000000) }

	obj, err := s.Put(context.Background(), "sponsors/logo", ".png", []byte("data"), "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.FileName, "1700000000000-"))
	assert.True(t, strings.HasSuffix(obj.FileName, ".png"))
	assert.Equal(t, "sponsors/logo/"+obj.FileName, obj.Key)
	assert.Equal(t, "http://localhost:3000/uploads/sponsors/logo/"+obj.FileName, obj.URL)

	got, err := os.ReadFile(filepath.Join(root, "sponsors", "logo", obj.FileName))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestNewLocalStorageNeedsRoot(t *testing.T) {
	_, err := NewLocalStorage(" ", "", "/uploads")
	assert.Error(t, err)
}
