package http

import (
	"context"
	"mime/multipart"
)

// FileService is the slice of the filestorage module the track handler needs
type FileService interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, string, error)
	Delete(ctx context.Context, key string) error
}
