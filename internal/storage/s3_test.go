package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	mu      sync.Mutex
	objects map[string]string
	err     error
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: make(map[string]string)}
}

func (f *fakeS3Client) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3KV(t *testing.T) {
	checkKVContract(t, NewS3KV(newFakeS3Client(), "bucket", "kv/"))
}

func TestS3KV_ObjectKeys(t *testing.T) {
	client := newFakeS3Client()
	kv := NewS3KV(client, "bucket", "kv/")

	require.NoError(t, kv.Set(context.Background(), "exercises_42", `[]`))
	assert.Contains(t, client.objects, "kv/exercises_42.json")
}

func TestS3KV_Errors(t *testing.T) {
	client := newFakeS3Client()
	client.err = errors.New("access denied")
	kv := NewS3KV(client, "bucket", "")
	ctx := context.Background()

	_, _, err := kv.Get(ctx, "workouts")
	assert.ErrorIs(t, err, client.err)
	assert.ErrorIs(t, kv.Set(ctx, "workouts", `[]`), client.err)
	assert.ErrorIs(t, kv.Remove(ctx, "workouts"), client.err)
}

func TestS3Endpoint(t *testing.T) {
	assert.Equal(t, "", s3Endpoint("", true))
	assert.Equal(t, "https://minio:9000", s3Endpoint("minio:9000", true))
	assert.Equal(t, "http://minio:9000", s3Endpoint("minio:9000", false))
	assert.Equal(t, "http://minio:9000", s3Endpoint("http://minio:9000", true))
}
