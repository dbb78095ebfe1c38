package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_WritesAndDoesNotOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := FileSink{Dir: dir}
	b := NewBlob("Categories.csv", []string{"Name"}, [][]string{{"Sports"}})

	p1, err := sink.Save(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "Categories.csv", filepath.Base(p1))

	p2, err := sink.Save(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "Categories (1).csv", filepath.Base(p2))

	data, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, b.Data, data)
}

type fakePutter struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	data, _ := io.ReadAll(in.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Sink_Save(t *testing.T) {
	fp := &fakePutter{}
	sink := NewS3SinkWithClient("admin-exports", fp)
	sink.now = func() time.Time { return time.Date(2024, 7, 9, 10, 0, 0, 0, time.UTC) }

	loc, err := sink.Save(context.Background(), NewBlob("LoginAnalytics.csv", []string{"Email"}, [][]string{{"a@x.com"}}))
	require.NoError(t, err)

	key := aws.ToString(fp.in.Key)
	assert.Equal(t, "admin-exports", aws.ToString(fp.in.Bucket))
	assert.True(t, strings.HasPrefix(key, "exports/2024/07/09/"), key)
	assert.True(t, strings.HasSuffix(key, "/LoginAnalytics.csv"), key)
	assert.Equal(t, ContentType, aws.ToString(fp.in.ContentType))
	assert.Equal(t, "\"Email\"\n\"a@x.com\"", fp.body)
	assert.Equal(t, "s3://admin-exports/"+key, loc)
}

func TestS3Sink_SaveError(t *testing.T) {
	sink := NewS3SinkWithClient("b", &fakePutter{err: errors.New("access denied")})

	_, err := sink.Save(context.Background(), NewBlob("x.csv", nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Sink_StaticCredentials(t *testing.T) {
	sink, err := NewS3Sink(context.Background(), S3Options{
		Bucket:       "b",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minio",
		SecretKey:    "minio123",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", sink.bucket)
	assert.IsType(t, &s3.Client{}, sink.client)
}
