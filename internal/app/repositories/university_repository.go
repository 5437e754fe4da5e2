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

// UniversityRepository handles database operations for universities
type UniversityRepository struct {
	db *pgxpool.Pool
}

// NewUniversityRepository creates a new university repository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
	}
}

const universityColumns = `id, short_code, display_order, name, location, ranking, intro,
	about_content, logo, image, youtube_video, accommodation_search,
	next_intake_date, intake_months, offer_letter_free, faqs, course_offerings, active`

func scanUniversity(row pgx.Row) (*models.University, error) {
	var u models.University
	err := row.Scan(
		&u.ID,
		&u.ShortCode,
		&u.DisplayOrder,
		&u.Name,
		&u.Location,
		&u.Ranking,
		&u.Intro,
		&u.AboutContent,
		&u.Logo,
		&u.Image,
		&u.YoutubeVideo,
		&u.AccommodationSearch,
		&u.NextIntakeDate,
		&u.IntakeMonths,
		&u.OfferLetterFree,
		&u.FAQs,
		&u.CourseOfferings,
		&u.Active,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new university
func (r *UniversityRepository) Create(ctx context.Context, u *models.University) error {
	query := `
		INSERT INTO universities (short_code, display_order, name, location, ranking, intro,
			about_content, logo, image, youtube_video, accommodation_search,
			next_intake_date, intake_months, offer_letter_free, faqs, course_offerings, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		u.ShortCode, u.DisplayOrder, u.Name, u.Location, u.Ranking, u.Intro,
		u.AboutContent, u.Logo, u.Image, u.YoutubeVideo, u.AccommodationSearch,
		u.NextIntakeDate, u.IntakeMonths, u.OfferLetterFree, u.FAQs, u.CourseOfferings, u.Active,
	).Scan(&u.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_universities_short_code") {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error creating university: %w", err)
	}

	return nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE id = $1`

	u, err := scanUniversity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}

	return u, nil
}

// GetAll retrieves all universities in display order
func (r *UniversityRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY display_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []*models.University
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return universities, nil
}

// ExistsByShortCode checks whether another university already uses the code
func (r *UniversityRepository) ExistsByShortCode(ctx context.Context, shortCode string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM universities WHERE LOWER(short_code) = LOWER($1) AND id != $2)`,
		shortCode, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking university existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing university
func (r *UniversityRepository) Update(ctx context.Context, u *models.University) error {
	query := `
		UPDATE universities
		SET short_code = $1, display_order = $2, name = $3, location = $4, ranking = $5,
		    intro = $6, about_content = $7, logo = $8, image = $9, youtube_video = $10,
		    accommodation_search = $11, next_intake_date = $12, intake_months = $13,
		    offer_letter_free = $14, faqs = $15, course_offerings = $16, active = $17
		WHERE id = $18
	`

	cmdTag, err := r.db.Exec(ctx, query,
		u.ShortCode, u.DisplayOrder, u.Name, u.Location, u.Ranking,
		u.Intro, u.AboutContent, u.Logo, u.Image, u.YoutubeVideo,
		u.AccommodationSearch, u.NextIntakeDate, u.IntakeMonths,
		u.OfferLetterFree, u.FAQs, u.CourseOfferings, u.Active,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// SetCourseOfferings replaces a university's persisted offerings. This is the
// editor save path: last write wins, there is no cross-session merge.
func (r *UniversityRepository) SetCourseOfferings(ctx context.Context, id int64, offerings []models.CourseOffering) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE universities SET course_offerings = $1 WHERE id = $2`, offerings, id)
	if err != nil {
		return fmt.Errorf("error saving course offerings: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete deletes a university by ID
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Count returns the number of universities
func (r *UniversityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM universities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting universities: %w", err)
	}
	return count, nil
}
