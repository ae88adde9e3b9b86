package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/configs"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3StoragePut(t *testing.T) {
	client := &fakeS3{}
	s := &S3Storage{Client: client, Bucket: "club", Region: "eu-west-1"}

	obj, err := s.Put(context.Background(), "news", ".webp", []byte("img"), "image/webp")
	require.NoError(t, err)

	assert.Equal(t, "club", aws.ToString(client.input.Bucket))
	assert.Equal(t, obj.Key, aws.ToString(client.input.Key))
	assert.Equal(t, "image/webp", aws.ToString(client.input.ContentType))
	assert.Equal(t, "img", string(client.body))
	assert.True(t, strings.HasPrefix(obj.Key, "news/"))
	assert.Equal(t, "https://club.s3.eu-west-1.amazonaws.com/"+obj.Key, obj.URL)

	client.err = errors.New("denied")
	_, err = s.Put(context.Background(), "news", ".webp", []byte("img"), "image/webp")
	assert.ErrorContains(t, err, "denied")
}

func TestS3PublicURL(t *testing.T) {
	s := &S3Storage{Bucket: "club", Endpoint: "http://minio:9000/", PathStyle: true}
	assert.Equal(t, "http://minio:9000/club/a/b.png", s.PublicURL("a/b.png"))

	s.PublicBase = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/a/b.png", s.PublicURL("a/b.png"))
}

func TestOSSPublicURL(t *testing.T) {
	s := &OSSStorage{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "club"}
	assert.Equal(t, "https://club.oss-ap-southeast-5.aliyuncs.com/x.png", s.PublicURL("x.png"))
}

func TestNewPicksDriver(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &configs.Config{Storage: configs.StorageConfig{Driver: "local", UploadDir: t.TempDir(), PublicPath: "/uploads"}}
	st, err := New(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, "local", st.Driver())

	cfg.Storage.Driver = "ftp"
	_, err = New(context.Background(), cfg, log)
	assert.Error(t, err)

	cfg.Storage.Driver = "oss"
	_, err = New(context.Background(), cfg, log)
	assert.ErrorContains(t, err, "missing OSS env")

	cfg.Storage.Driver = "s3"
	_, err = New(context.Background(), cfg, log)
	assert.ErrorContains(t, err, "missing S3_BUCKET")
}
