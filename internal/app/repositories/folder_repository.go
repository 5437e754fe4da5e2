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

// FolderRepository handles database operations for course folders
type FolderRepository struct {
	db *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *pgxpool.Pool) *FolderRepository {
	return &FolderRepository{
		db: db,
	}
}

// Create creates a new folder. The display order is assigned as one past the
// current folder count, matching how folders accumulate at the end of the list.
func (r *FolderRepository) Create(ctx context.Context, folder *models.CourseFolder) error {
	query := `
		INSERT INTO course_folders (name, display_order)
		VALUES ($1, (SELECT COUNT(*) + 1 FROM course_folders))
		RETURNING id, display_order
	`

	err := r.db.QueryRow(ctx, query, folder.Name).Scan(&folder.ID, &folder.DisplayOrder)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_course_folders_name") {
			return apperrors.ErrFolderAlreadyExists
		}
		return fmt.Errorf("error creating folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*models.CourseFolder, error) {
	var folder models.CourseFolder
	err := r.db.QueryRow(ctx,
		`SELECT id, name, display_order FROM course_folders WHERE id = $1`, id,
	).Scan(&folder.ID, &folder.Name, &folder.DisplayOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFolderNotFound
		}
		return nil, fmt.Errorf("error retrieving folder: %w", err)
	}

	return &folder, nil
}

// GetAll retrieves all folders in display order
func (r *FolderRepository) GetAll(ctx context.Context) ([]*models.CourseFolder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, display_order FROM course_folders ORDER BY display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []*models.CourseFolder
	for rows.Next() {
		var folder models.CourseFolder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.DisplayOrder); err != nil {
			return nil, err
		}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return folders, nil
}

// Rename updates a folder's name
func (r *FolderRepository) Rename(ctx context.Context, id int64, name string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE course_folders SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error renaming folder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFolderNotFound
	}

	return nil
}

// Delete removes a folder and re-parents its courses to uncategorized in a
// single transaction. Courses are never deleted with their folder.
func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting folder delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE courses SET folder_id = NULL WHERE folder_id = $1`, id); err != nil {
		return fmt.Errorf("error re-parenting courses: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM course_folders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting folder: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFolderNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing folder delete: %w", err)
	}

	return nil
}
