package dto

import "github.com/almokadam/backoffice/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Level       string `json:"level" binding:"required,oneof=Foundation Diploma Bachelor Masters PhD"`
	FolderID    *int64 `json:"folderId" binding:"omitempty,gt=0"`
	Duration    string `json:"duration"`
	Credits     string `json:"credits"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Level       string `json:"level" binding:"required,oneof=Foundation Diploma Bachelor Masters PhD"`
	FolderID    *int64 `json:"folderId" binding:"omitempty,gt=0"`
	Duration    string `json:"duration"`
	Credits     string `json:"credits"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// MoveCourseRequest re-parents a course to another folder; a null folderId
// moves it to uncategorized.
type MoveCourseRequest struct {
	FolderID *int64 `json:"folderId" binding:"omitempty,gt=0"`
}

// CreateFolderRequest represents folder creation data
type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameFolderRequest represents folder rename data
type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// FolderGroupResponse is one folder with its courses in the catalog tree view
type FolderGroupResponse struct {
	Folder  *models.CourseFolder `json:"folder,omitempty"` // nil for the uncategorized bucket
	Courses []*models.Course     `json:"courses"`
}

// CatalogTreeResponse is the folder-grouped catalog listing
type CatalogTreeResponse struct {
	Folders       []FolderGroupResponse `json:"folders"`
	Uncategorized []*models.Course      `json:"uncategorized"`
}
