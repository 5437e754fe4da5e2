package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// FolderService handles catalog folder operations
type FolderService struct {
	folderRepo *repositories.FolderRepository
}

// NewFolderService creates a new folder service instance
func NewFolderService(folderRepo *repositories.FolderRepository) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
	}
}

// CreateFolder creates a new catalog folder at the end of the display order
func (s *FolderService) CreateFolder(ctx context.Context, name string) (*models.CourseFolder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	folder := &models.CourseFolder{Name: name}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("error creating folder: %w", err)
	}
	return folder, nil
}

// GetAllFolders retrieves all folders in display order
func (s *FolderService) GetAllFolders(ctx context.Context) ([]*models.CourseFolder, error) {
	return s.folderRepo.GetAll(ctx)
}

// RenameFolder renames an existing folder
func (s *FolderService) RenameFolder(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.folderRepo.Rename(ctx, id, name)
}

// DeleteFolder deletes a folder. Its courses survive and move to the
// uncategorized bucket.
func (s *FolderService) DeleteFolder(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid folder ID", apperrors.ErrValidationFailed)
	}
	return s.folderRepo.Delete(ctx, id)
}
