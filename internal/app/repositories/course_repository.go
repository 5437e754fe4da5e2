package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
	"github.com/almokadam/backoffice/internal/pkg/dberrors"
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, name, level, category, folder_id, duration, credits, image, description`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Level,
		&course.Category,
		&course.FolderID,
		&course.Duration,
		&course.Credits,
		&course.Image,
		&course.Description,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create creates a new catalog course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, level, category, folder_id, duration, credits, image, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Level, course.Category, course.FolderID,
		course.Duration, course.Credits, course.Image, course.Description,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_courses_name") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by name
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ExistsByName checks for a course with the given name, case-insensitively
func (r *CourseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE LOWER(name) = LOWER($1))`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, level = $2, category = $3, folder_id = $4,
		    duration = $5, credits = $6, image = $7, description = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.Level, course.Category, course.FolderID,
		course.Duration, course.Credits, course.Image, course.Description,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SetFolder re-parents a course; a nil folderID moves it to uncategorized
func (r *CourseRepository) SetFolder(ctx context.Context, courseID int64, folderID *int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET folder_id = $1 WHERE id = $2`, folderID, courseID)
	if err != nil {
		return fmt.Errorf("error moving course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Persisted university offerings referencing
// the course are intentionally left in place; they surface as placeholders
// the next time that university is edited.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the number of catalog courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
