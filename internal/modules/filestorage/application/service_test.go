package application

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockStorage) GetKeyFromURL(url string) (string, error) {
	args := m.Called(url)
	return args.String(0), args.Error(1)
}

type fakeFile struct {
	io.Reader
}

func (f fakeFile) ReadAt(p []byte, off int64) (int, error) { return 0, io.EOF }
func (f fakeFile) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}
func (f fakeFile) Close() error { return nil }

func TestUpload_GeneratesKeyInFolder(t *testing.T) {
	storage := new(mockStorage)
	service := NewFileService(storage)

	header := &multipart.FileHeader{
		Filename: "demo.sty",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}
	file := fakeFile{strings.NewReader("content")}

	storage.On("UploadFile", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "tracks/") && strings.HasSuffix(key, ".sty")
	}), mock.Anything, "application/octet-stream").Return("http://cdn/tracks/key.sty", nil)

	url, key, err := service.Upload(context.Background(), file, header, "tracks")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/tracks/key.sty", url)
	assert.True(t, strings.HasPrefix(key, "tracks/"))
	assert.True(t, strings.HasSuffix(key, ".sty"))
	storage.AssertExpectations(t)
}

func TestUpload_StorageFailure(t *testing.T) {
	storage := new(mockStorage)
	service := NewFileService(storage)

	header := &multipart.FileHeader{Filename: "demo.aus", Header: textproto.MIMEHeader{}}
	storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, _, err := service.Upload(context.Background(), fakeFile{strings.NewReader("x")}, header, "tracks")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	storage := new(mockStorage)
	service := NewFileService(storage)

	storage.On("DeleteFile", mock.Anything, "tracks/old.sty").Return(nil)

	err := service.Delete(context.Background(), "tracks/old.sty")
	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestGetKeyFromUrl(t *testing.T) {
	storage := new(mockStorage)
	service := NewFileService(storage)

	storage.On("GetKeyFromURL", "http://cdn/tracks/a.sty").Return("tracks/a.sty", nil)

	key, err := service.GetKeyFromUrl("http://cdn/tracks/a.sty")
	require.NoError(t, err)
	assert.Equal(t, "tracks/a.sty", key)
}
