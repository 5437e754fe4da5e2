package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// CourseService handles catalog course operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
	folderRepo *repositories.FolderRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, folderRepo *repositories.FolderRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		folderRepo: folderRepo,
	}
}

func (s *CourseService) validateCourse(name string, level models.CourseLevel) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !level.Valid() {
		return fmt.Errorf("%w: unknown course level %q", apperrors.ErrValidationFailed, level)
	}
	return nil
}

// checkFolder verifies the target folder exists when one is given
func (s *CourseService) checkFolder(ctx context.Context, folderID *int64) error {
	if folderID == nil {
		return nil
	}
	if _, err := s.folderRepo.GetByID(ctx, *folderID); err != nil {
		return err
	}
	return nil
}

// CreateCourse creates a new catalog course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	level := models.CourseLevel(req.Level)
	if err := s.validateCourse(name, level); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking course name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	if err := s.checkFolder(ctx, req.FolderID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:        name,
		Level:       level,
		Category:    categoryForLevel(level),
		FolderID:    req.FolderID,
		Duration:    req.Duration,
		Credits:     req.Credits,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// categoryForLevel derives the catalog grouping category from a course level.
// Postgraduate levels get their own category, everything else is Other.
func categoryForLevel(level models.CourseLevel) string {
	switch level {
	case models.LevelMasters, models.LevelPhD:
		return "Postgraduate"
	default:
		return "Other"
	}
}

// GetCourseByID retrieves a catalog course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetCatalogTree returns all courses grouped by folder in display order,
// with a trailing uncategorized bucket.
func (s *CourseService) GetCatalogTree(ctx context.Context) (*dto.CatalogTreeResponse, error) {
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving folders: %w", err)
	}
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	byFolder := make(map[int64][]*models.Course)
	var uncategorized []*models.Course
	known := make(map[int64]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}
	for _, c := range courses {
		// A dangling folder reference groups with uncategorized
		if c.FolderID != nil && known[*c.FolderID] {
			byFolder[*c.FolderID] = append(byFolder[*c.FolderID], c)
		} else {
			uncategorized = append(uncategorized, c)
		}
	}

	tree := &dto.CatalogTreeResponse{
		Folders:       make([]dto.FolderGroupResponse, 0, len(folders)),
		Uncategorized: uncategorized,
	}
	for _, f := range folders {
		tree.Folders = append(tree.Folders, dto.FolderGroupResponse{
			Folder:  f,
			Courses: byFolder[f.ID],
		})
	}

	return tree, nil
}

// UpdateCourse updates an existing catalog course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	level := models.CourseLevel(req.Level)
	if err := s.validateCourse(name, level); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkFolder(ctx, req.FolderID); err != nil {
		return nil, err
	}

	course.Name = name
	course.Level = level
	course.Category = categoryForLevel(level)
	course.FolderID = req.FolderID
	course.Duration = req.Duration
	course.Credits = req.Credits
	course.Image = req.Image
	course.Description = req.Description

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// MoveCourse re-parents a course to another folder. A nil folder ID moves
// the course to the uncategorized bucket.
func (s *CourseService) MoveCourse(ctx context.Context, id int64, folderID *int64) error {
	if err := s.checkFolder(ctx, folderID); err != nil {
		return err
	}
	return s.courseRepo.SetFolder(ctx, id, folderID)
}

// DeleteCourse deletes a catalog course. Offerings on saved university pages
// that still reference the course resolve to a placeholder in the editor.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.Delete(ctx, id)
}
