package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/almokadam/backoffice/internal/pkg/logger"
)

// MaxImageSize caps uploaded images at 5 MB
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

// LocalStorage stores uploaded images on the local filesystem.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // public prefix prepended to returned paths
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// baseURL is the public prefix the files are served from.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveImage validates and stores an uploaded image under subPath, returning
// the public path. Filenames are replaced with UUIDs to avoid collisions.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	if fileHeader.Size > MaxImageSize {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", int64(MaxImageSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	publicPath := strings.TrimRight(ls.baseURL, "/")
	if subPath != "" {
		publicPath += "/" + subPath
	}
	publicPath += "/" + uniqueFilename

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", uniqueFilename).Msg("Image saved")
	return publicPath, nil
}

// DeleteFile removes a stored file given its public path. Deleting a missing
// file succeeds so callers can retry safely.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetFullPath maps a public file path back to the filesystem path
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	trimmed := strings.TrimPrefix(fileURL, strings.TrimRight(ls.baseURL, "/"))
	trimmed = strings.TrimLeft(trimmed, "/")
	if trimmed == "" || strings.Contains(trimmed, "..") {
		return ""
	}

	return filepath.Join(ls.basePath, filepath.FromSlash(trimmed))
}
