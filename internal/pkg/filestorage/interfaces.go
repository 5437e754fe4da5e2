package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for uploaded image storage
type FileStorage interface {
	// SaveImage stores an uploaded image under a subdirectory and returns
	// the public path to serve it from
	SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file; deleting a missing file is not an error
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path behind a public file path
	GetFullPath(fileURL string) string
}
