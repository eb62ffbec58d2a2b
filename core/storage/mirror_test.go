package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"pogodata/core/storage"
	"pogodata/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMirrorPut(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "pogodata").Return(true, nil)
	client.On("PutObject", mock.Anything, "pogodata", "mirror/base.proto",
		mock.Anything, int64(4), mock.Anything).Return(minio.UploadInfo{}, nil)

	mirror := storage.NewMirror(client, "pogodata")
	err := mirror.Put(context.Background(), "base.proto", []byte("data"))
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestMirrorPutCreatesBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "pogodata").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "pogodata", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "pogodata", "mirror/gamemaster.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	mirror := storage.NewMirror(client, "pogodata")
	err := mirror.Put(context.Background(), "gamemaster.json", []byte("[]"))
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestMirrorGet(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "pogodata", "mirror/base.proto", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("enum Form {}"))), nil)

	mirror := storage.NewMirror(client, "pogodata")
	data, err := mirror.Get(context.Background(), "base.proto")
	assert.NoError(t, err)
	assert.Equal(t, []byte("enum Form {}"), data)
}

func TestMirrorGetError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "pogodata", "mirror/base.proto", mock.Anything).
		Return(nil, errors.New("no such object"))

	mirror := storage.NewMirror(client, "pogodata")
	_, err := mirror.Get(context.Background(), "base.proto")
	assert.Error(t, err)
}
