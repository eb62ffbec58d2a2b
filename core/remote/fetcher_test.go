package remote_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pogodata/core/remote"
	"pogodata/core/storage"
	"pogodata/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/base.proto":
			_, _ = w.Write([]byte("enum Form {}"))
		case "/i18n_german.json":
			_, _ = w.Write([]byte(`{"data": []}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	fetcher := remote.NewFetcher(remote.Config{
		ProtoURL:      server.URL + "/base.proto",
		GameMasterURL: server.URL + "/missing.json",
		LocaleURL:     server.URL + "/i18n_{lang}.json",
	}, nil, zap.NewNop())

	data, err := fetcher.Proto(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte("enum Form {}"), data)

	data, err = fetcher.Locale(context.Background(), "German")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"data": []}`), data)

	_, err = fetcher.GameMaster(context.Background())
	assert.Error(t, err)
}

func TestFetchMirrorsOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fresh"))
	}))
	defer server.Close()

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "pogodata").Return(true, nil)
	client.On("PutObject", mock.Anything, "pogodata", "mirror/base.proto",
		mock.Anything, int64(5), mock.Anything).Return(minio.UploadInfo{}, nil)

	fetcher := remote.NewFetcher(remote.Config{ProtoURL: server.URL},
		storage.NewMirror(client, "pogodata"), zap.NewNop())

	data, err := fetcher.Proto(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), data)
	client.AssertExpectations(t)
}

func TestFetchFallsBackToMirror(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "pogodata", "mirror/base.proto", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("stale but usable"))), nil)

	fetcher := remote.NewFetcher(remote.Config{ProtoURL: server.URL},
		storage.NewMirror(client, "pogodata"), zap.NewNop())

	data, err := fetcher.Proto(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte("stale but usable"), data)
}

func TestLocaleDumpName(t *testing.T) {
	assert.Equal(t, "locale_english.json", remote.LocaleDumpName("English"))
}
